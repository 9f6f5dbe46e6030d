package mini

import (
	"bytes"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/match"
)

// scripted answers prompts in order; once exhausted it interrupts.
type scripted struct {
	queries []string
	picks   []int
	options [][]string
}

func (s *scripted) ask(p survey.Prompt, response any, _ ...survey.AskOpt) error {
	switch p := p.(type) {
	case *survey.Input:
		if len(s.queries) == 0 {
			return terminal.InterruptErr
		}
		*response.(*string) = s.queries[0]
		s.queries = s.queries[1:]
	case *survey.Select:
		s.options = append(s.options, p.Options)
		if len(s.picks) == 0 {
			return terminal.InterruptErr
		}
		*response.(*int) = s.picks[0]
		s.picks = s.picks[1:]
	}
	return nil
}

func TestRun(t *testing.T) {
	Convey("Given a scripted mini session", t, func() {
		viper.Set(key.PaletteMatchMode, match.Substring)
		viper.Set(key.TUIOpenURLs, false)
		viper.Set(key.IconsVariant, "plain")

		original := ask
		Reset(func() { ask = original })

		var out bytes.Buffer

		Convey("Query ai offers the two matching entries and selecting notifies then navigates", func() {
			s := &scripted{queries: []string{"ai"}, picks: []int{1}}
			ask = s.ask

			So(Run(&Options{Once: true, Out: &out}), ShouldBeNil)
			So(s.options[0], ShouldResemble, []string{"Trends › AI Content Creation", "Hashtags › #AIRevolution"})

			printed := out.String()
			So(printed, ShouldContainSubstring, "#AIRevolution")
			So(printed, ShouldContainSubstring, "/hashtags/airevolution")
			So(bytes.Index(out.Bytes(), []byte("#AIRevolution")), ShouldBeLessThan, bytes.Index(out.Bytes(), []byte("/hashtags/airevolution")))
		})

		Convey("A query matching nothing prints the empty state and asks again", func() {
			s := &scripted{queries: []string{"zzz-no-match"}}
			ask = s.ask

			So(Run(&Options{Out: &out}), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "No results found.")
			So(s.options, ShouldBeEmpty)
		})

		Convey("An interrupt ends the session cleanly", func() {
			ask = (&scripted{}).ask
			So(Run(&Options{Out: &out}), ShouldBeNil)
		})

		Convey("An invalid match mode is reported", func() {
			viper.Set(key.PaletteMatchMode, "regex")
			So(Run(&Options{Out: &out}), ShouldNotBeNil)
		})
	})
}
