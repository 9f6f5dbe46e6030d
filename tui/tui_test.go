package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/keyboard"
	"github.com/trendspotter/trendspotter/trend"
)

func init() {
	viper.Set(key.TUINotificationLifetime, 3)
	viper.Set(key.TUIShowTargets, true)
	viper.Set(key.TUIOpenURLs, false)
	viper.Set(key.TUISearchPromptString, "> ")
	viper.Set(key.IconsVariant, "plain")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(b *statefulBubble, msgs ...tea.Msg) {
	for _, msg := range msgs {
		b.Update(msg)
	}
}

func typeText(b *statefulBubble, text string) {
	for _, r := range text {
		press(b, runes(string(r)))
	}
}

func testTrends() *trend.Dataset {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return trend.NewDataset([]trend.Post{
		{Date: day, Platform: "Twitter", Trend: "Creator Economy", Hashtag: "#Marketing2025", Industry: "Business", Engagement: 1000, Impressions: 10000, Growth: 10, Content: "The best Creator Economy ideas I have seen this week #Marketing2025"},
		{Date: day.AddDate(0, 0, 1), Platform: "Twitter", Trend: "Creator Economy", Hashtag: "#GrowthHacking", Industry: "Business", Engagement: 3000, Impressions: 20000, Growth: 20, Content: "Honestly tired of seeing Creator Economy everywhere #GrowthHacking"},
		{Date: day.AddDate(0, 0, 1), Platform: "Instagram", Trend: "Creator Economy", Hashtag: "#Marketing2025", Industry: "Business", Engagement: 2000, Impressions: 10000, Growth: 15, Content: "Check out this Creator Economy update! #Marketing2025"},
		{Date: day.AddDate(0, 0, 2), Platform: "TikTok", Trend: "AI Content Creation", Hashtag: "#AIRevolution", Industry: "Technology", Engagement: 500, Impressions: 5000, Growth: 30, Content: "Loving the energy around AI Content Creation right now #AIRevolution"},
	})
}

func newTestBubble() (*statefulBubble, *keyboard.Bus) {
	bus := keyboard.NewBus()
	b := newBubble(&Options{Bus: bus, Trends: testTrends()})
	b.resize(100, 40)
	b.palette.Mount()
	return b, bus
}

func TestChord(t *testing.T) {
	Convey("Given a mounted interface", t, func() {
		b, bus := newTestBubble()
		Reset(b.palette.Unmount)

		Convey("Ctrl+K opens the palette and the input does not receive the key", func() {
			press(b, tea.KeyMsg{Type: tea.KeyCtrlK})
			So(b.palette.IsOpen(), ShouldBeTrue)
			So(b.inputC.Value(), ShouldBeEmpty)
			So(b.inputC.Focused(), ShouldBeTrue)

			Convey("A second Ctrl+K closes it", func() {
				press(b, tea.KeyMsg{Type: tea.KeyCtrlK})
				So(b.palette.IsOpen(), ShouldBeFalse)
				So(b.inputC.Focused(), ShouldBeFalse)
			})
		})

		Convey("Alt+K toggles as the meta chord", func() {
			press(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}, Alt: true})
			So(b.palette.IsOpen(), ShouldBeTrue)
		})

		Convey("A plain k does nothing while closed", func() {
			press(b, runes("k"))
			So(b.palette.IsOpen(), ShouldBeFalse)
		})

		Convey("After unmount the chord is ignored", func() {
			b.palette.Unmount()
			So(bus.Len(), ShouldEqual, 0)
			press(b, tea.KeyMsg{Type: tea.KeyCtrlK})
			So(b.palette.IsOpen(), ShouldBeFalse)
		})
	})
}

func TestPalette(t *testing.T) {
	Convey("Given an open palette", t, func() {
		b, _ := newTestBubble()
		Reset(b.palette.Unmount)
		press(b, runes("/"))
		So(b.palette.IsOpen(), ShouldBeTrue)

		Convey("Typing filters the results", func() {
			typeText(b, "ai")
			So(b.inputC.Value(), ShouldEqual, "ai")

			view := b.View()
			So(view, ShouldContainSubstring, "AI Content Creation")
			So(view, ShouldContainSubstring, "#AIRevolution")
			So(view, ShouldNotContainSubstring, "#TechTrends")
			So(view, ShouldContainSubstring, "2 results")

			Convey("Enter selects the highlighted entry", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEnter})
				So(b.palette.IsOpen(), ShouldBeFalse)
				So(b.toast.Message(), ShouldEqual, "AI Content Creation")
				So(b.router.Current(), ShouldEqual, "/trends/ai-content-creation")
			})

			Convey("Down then enter selects the next entry", func() {
				press(b, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
				So(b.router.Current(), ShouldEqual, "/hashtags/airevolution")
			})

			Convey("Up wraps to the last entry", func() {
				press(b, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
				So(b.router.Current(), ShouldEqual, "/hashtags/airevolution")
			})
		})

		Convey("The cursor is clamped when the query changes, not when rendering", func() {
			typeText(b, "ai")
			b.cursor = 5

			b.View()
			So(b.cursor, ShouldEqual, 5)

			press(b, tea.KeyMsg{Type: tea.KeyRight})
			So(b.inputC.Value(), ShouldEqual, "ai")
			So(b.cursor, ShouldEqual, 1)

			press(b, tea.KeyMsg{Type: tea.KeyEnter})
			So(b.router.Current(), ShouldEqual, "/hashtags/airevolution")
		})

		Convey("A query matching nothing shows the empty state", func() {
			typeText(b, "zzz-no-match")
			So(b.View(), ShouldContainSubstring, "No results found.")

			Convey("And enter does nothing", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEnter})
				So(b.palette.IsOpen(), ShouldBeTrue)
				So(b.router.Current(), ShouldEqual, "/")
			})
		})

		Convey("Escape closes the overlay without navigating", func() {
			press(b, tea.KeyMsg{Type: tea.KeyEsc})
			So(b.palette.IsOpen(), ShouldBeFalse)
			So(b.router.Current(), ShouldEqual, "/")
		})

		Convey("q is typed into the query rather than quitting", func() {
			press(b, runes("q"))
			So(b.inputC.Value(), ShouldEqual, "q")
		})

		Convey("Reopening starts from an empty query", func() {
			typeText(b, "tech")
			press(b, tea.KeyMsg{Type: tea.KeyEsc}, runes("/"))
			So(b.inputC.Value(), ShouldBeEmpty)
		})
	})
}

func TestNavbar(t *testing.T) {
	Convey("Given a closed palette", t, func() {
		b, _ := newTestBubble()
		Reset(b.palette.Unmount)

		view := b.View()
		So(view, ShouldContainSubstring, "TrendSpotter")
		So(view, ShouldContainSubstring, "Dashboard")

		Convey("Tab and enter press the settings button", func() {
			press(b, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
			So(b.router.Current(), ShouldEqual, catalog.RouteSettings)
			So(b.View(), ShouldContainSubstring, "Settings")

			Convey("Escape goes back", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEsc})
				So(b.router.Current(), ShouldEqual, "/")
			})
		})

		Convey("Clicking the search trigger opens the palette", func() {
			var trigger zone
			for _, z := range b.zones {
				if z.focus == searchFocus {
					trigger = z
				}
			}
			So(trigger.x1, ShouldBeGreaterThan, trigger.x0)

			press(b, tea.MouseMsg{X: trigger.x0, Y: trigger.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			So(b.palette.IsOpen(), ShouldBeTrue)

			Convey("Clicking outside the overlay closes it", func() {
				b.View()
				press(b, tea.MouseMsg{X: 1, Y: b.overlayBottom + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
				So(b.palette.IsOpen(), ShouldBeFalse)
			})
		})

		Convey("Clicking the profile button navigates", func() {
			for _, z := range b.zones {
				if z.focus == profileFocus {
					press(b, tea.MouseMsg{X: z.x0, Y: z.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
				}
			}
			So(b.router.Current(), ShouldEqual, catalog.RouteProfile)
		})

		Convey("An unknown route suggests a close one", func() {
			b.router.Navigate("/setings")
			So(b.View(), ShouldContainSubstring, "Page not found")
			So(strings.Contains(b.View(), "/settings"), ShouldBeTrue)
		})
	})
}

func TestAnalytics(t *testing.T) {
	Convey("Given a closed palette over a known dataset", t, func() {
		b, _ := newTestBubble()
		Reset(b.palette.Unmount)

		Convey("The dashboard ranks trends and hashtags", func() {
			view := b.View()
			So(view, ShouldContainSubstring, "Dashboard")
			So(view, ShouldContainSubstring, "All Platforms · All Industries")
			So(view, ShouldContainSubstring, "Top trends")
			So(view, ShouldContainSubstring, "1. AI Content Creation")
			So(view, ShouldContainSubstring, "1. #GrowthHacking")
			So(view, ShouldContainSubstring, "Positive 50.0%")
			So(view, ShouldContainSubstring, "Create content around 'Creator Economy'")
		})

		Convey("A trend page shows its figures, forecast and related trends", func() {
			b.router.Navigate("/trends/creator-economy")
			view := b.View()
			So(view, ShouldContainSubstring, "Business")
			So(view, ShouldContainSubstring, "rank 2 of 2")
			So(view, ShouldContainSubstring, "6,000")
			So(view, ShouldContainSubstring, "+15.0%")
			So(view, ShouldContainSubstring, "+100.0% day over day")
			So(view, ShouldContainSubstring, "2.0K → 2.3K")
			So(view, ShouldContainSubstring, "Creator Funds")
		})

		Convey("A trend without posts says so", func() {
			b.router.Navigate("/trends/social-commerce")
			view := b.View()
			So(view, ShouldContainSubstring, "No posts about Social Commerce match the current filters.")
			So(view, ShouldContainSubstring, "Live Shopping")
		})

		Convey("A hashtag page shows its rank and trends", func() {
			b.router.Navigate("/hashtags/marketing2025")
			view := b.View()
			So(view, ShouldContainSubstring, "2 of 3 by engagement")
			So(view, ShouldContainSubstring, "3,000")
			So(view, ShouldContainSubstring, "Creator Economy (2)")
		})

		Convey("The filter narrows every page", func() {
			b.filter = trend.Filter{Platform: "TikTok", Days: 1}
			So(b.View(), ShouldContainSubstring, "TikTok · All Industries · 24 Hours")

			b.router.Navigate("/hashtags/marketing2025")
			So(b.View(), ShouldContainSubstring, "No posts with #Marketing2025 match the current filters.")
		})
	})

	Convey("sparkline scales onto bars", t, func() {
		So(sparkline(nil), ShouldBeEmpty)
		So(sparkline([]int{1, 8}), ShouldContainSubstring, "▁█")
	})
}
