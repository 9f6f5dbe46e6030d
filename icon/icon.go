// Package icon renders UI symbols in the variant chosen by the user.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII or Unicode squares.
package icon

import (
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Search Icon = iota
	Bell
	Gear
	User
	Trend
	Hashtag
	Page
	Link
	Success
	Fail
	Cursor
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Search:  {emoji: "🔍", nerd: "", plain: "?", squares: "◫"},
	Bell:    {emoji: "🔔", nerd: "", plain: "!", squares: "▣"},
	Gear:    {emoji: "⚙️", nerd: "", plain: "*", squares: "▤"},
	User:    {emoji: "👤", nerd: "", plain: "@", squares: "▥"},
	Trend:   {emoji: "📈", nerd: "", plain: "~", squares: "▨"},
	Hashtag: {emoji: "#️⃣", nerd: "", plain: "#", squares: "▧"},
	Page:    {emoji: "📄", nerd: "", plain: "-", squares: "□"},
	Link:    {emoji: "🔗", nerd: "", plain: "->", squares: "▷"},
	Success: {emoji: "🎉", nerd: "", plain: "✓", squares: "■"},
	Fail:    {emoji: "💀", nerd: "", plain: "✖", squares: "▪"},
	Cursor:  {emoji: "👉", nerd: "", plain: ">", squares: "▶"},
}

// Get returns the rendered string for an icon in the configured variant.
func Get(i Icon) string {
	if d, ok := icons[i]; ok {
		return d.Get()
	}
	return ""
}
