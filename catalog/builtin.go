package catalog

// Category names of the built-in catalog.
const (
	Trends   = "Trends"
	Hashtags = "Hashtags"
	Pages    = "Pages"
)

// Page routes referenced by the navbar buttons.
const (
	RouteDashboard     = "/"
	RouteNotifications = "/notifications"
	RouteSettings      = "/settings"
	RouteProfile       = "/profile"
)

var builtin = MustNew([]Category{
	{
		Name: Trends,
		Items: []Entry{
			{Label: "AI Content Creation", Target: "/trends/ai-content-creation"},
			{Label: "Short-form Video", Target: "/trends/short-form-video"},
			{Label: "Creator Economy", Target: "/trends/creator-economy"},
			{Label: "Social Commerce", Target: "/trends/social-commerce"},
		},
	},
	{
		Name: Hashtags,
		Items: []Entry{
			{Label: "#AIRevolution", Target: "/hashtags/airevolution"},
			{Label: "#TechTrends", Target: "/hashtags/techtrends"},
			{Label: "#Marketing2025", Target: "/hashtags/marketing2025"},
			{Label: "#GrowthHacking", Target: "/hashtags/growthhacking"},
			{Label: "#ContentStrategy", Target: "/hashtags/contentstrategy"},
		},
	},
	{
		Name: Pages,
		Items: []Entry{
			{Label: "Dashboard", Target: RouteDashboard},
			{Label: "Notifications", Target: RouteNotifications},
			{Label: "Settings", Target: RouteSettings},
			{Label: "Profile", Target: RouteProfile},
		},
	},
})

// Builtin returns the catalog shipped with the application.
func Builtin() *Catalog {
	return builtin
}
