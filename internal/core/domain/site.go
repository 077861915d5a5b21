package domain

// Author identifies who built the application.
type Author struct {
	Name  string
	Group string
}

// AppInfo is the application metadata shown on every page.
type AppInfo struct {
	Name    string
	Version string
	Author  Author
}

// Page is a navigation entry.
type Page struct {
	Caption string
	Href    string
}
