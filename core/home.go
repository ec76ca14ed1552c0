package core

import "net/http"

// Service is one entry in the home page service grid. Price carries the
// pre-formatted KZT label the template prints verbatim.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Image       string `json:"image"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FooterLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// HomePage is the binding contract for templates/home.html. It is a static
// data holder: fields are filled from the literals below and never mutated.
type HomePage struct {
	SiteName    string
	LoggedIn    bool
	Services    []Service
	Stats       []Stat
	FooterLinks []FooterLink
}

var homeServices = []Service{
	{
		Title:       "Classic Haircut",
		Description: "A precise cut from one of our master barbers, finished with a hot towel and styling.",
		Price:       "3 000 ₸",
		Icon:        "scissors",
		Color:       "amber",
		Image:       "/static/img/classic-haircut.svg",
	},
	{
		Title:       "Beard Trim",
		Description: "Shape, line-up and condition. Twenty minutes in the chair, months of good habits.",
		Price:       "1 500 ₸",
		Icon:        "razor",
		Color:       "teal",
		Image:       "/static/img/beard-trim.svg",
	},
	{
		Title:       "Hair + Beard",
		Description: "The full service: haircut and beard trim in a single sitting, at a combined price.",
		Price:       "4 000 ₸",
		Icon:        "brush",
		Color:       "indigo",
		Image:       "/static/img/hair-and-beard.svg",
	},
}

var homeStats = []Stat{
	{Value: "500+", Label: "Happy clients"},
	{Value: "12", Label: "Master barbers"},
	{Value: "3", Label: "Salons across Almaty"},
}

// Footer targets are placeholders until the standalone pages exist.
var homeFooterLinks = []FooterLink{
	{Label: "About us", Href: "#"},
	{Label: "Services", Href: "#"},
	{Label: "Contacts", Href: "#"},
	{Label: "Privacy policy", Href: "#"},
}

// NewHomePage builds the home view-model. LoggedIn stays false until the
// auth service integration lands.
func NewHomePage(cfg Config) HomePage {
	return HomePage{
		SiteName:    cfg.SiteName,
		LoggedIn:    false,
		Services:    homeServices,
		Stats:       homeStats,
		FooterLinks: homeFooterLinks,
	}
}

// HomePageData is the route data provider for "/".
func HomePageData(cfg Config) PageDataFunc {
	return func(r *http.Request, params map[string]string) (any, error) {
		return NewHomePage(cfg), nil
	}
}
