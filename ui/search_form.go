package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"railroute/core"
	"railroute/core/catalog"
	"railroute/internal/debuglog"
	"railroute/internal/dialogs"
	"railroute/ui/components"
)

// stations is the fixed list offered by both route selectors.
var stations = []string{
	"New York",
	"Chicago",
	"Los Angeles",
	"Seattle",
	"Boston",
	"St. Louis",
	"San Francisco",
	"Portland",
}

// popularRoute is one of the predefined quick-search cards.
type popularRoute struct {
	From     string
	To       string
	Duration string
	Price    int
}

var popularRoutes = []popularRoute{
	{From: "New York", To: "Boston", Duration: "3h 30m", Price: 125},
	{From: "Chicago", To: "St. Louis", Duration: "5h 15m", Price: 89},
	{From: "Los Angeles", To: "San Francisco", Duration: "6h 45m", Price: 110},
	{From: "Seattle", To: "Portland", Duration: "3h 20m", Price: 75},
}

// SearchForm is the origin/destination/date/passengers form plus the
// popular-route shortcuts. A successful search hands the query to onSearch.
type SearchForm struct {
	controller *core.AppController
	onSearch   func(catalog.Query)

	originSelect      *widget.Select
	destinationSelect *widget.Select
	dateEntry         *widget.Entry
	passengersSelect  *widget.Select

	content fyne.CanvasObject
}

func NewSearchForm(controller *core.AppController, onSearch func(catalog.Query)) *SearchForm {
	f := &SearchForm{
		controller: controller,
		onSearch:   onSearch,
	}
	f.build()
	return f
}

// Content returns the rendered form.
func (f *SearchForm) Content() fyne.CanvasObject {
	return f.content
}

func (f *SearchForm) build() {
	f.originSelect = widget.NewSelect(stations, nil)
	f.originSelect.PlaceHolder = "Select origin station"
	f.destinationSelect = widget.NewSelect(stations, nil)
	f.destinationSelect.PlaceHolder = "Select destination station"

	f.dateEntry = widget.NewEntry()
	f.dateEntry.SetText(time.Now().Format("2006-01-02"))

	passengerOptions := make([]string, 0, 8)
	for n := 1; n <= 8; n++ {
		label := fmt.Sprintf("%d passengers", n)
		if n == 1 {
			label = "1 passenger"
		}
		passengerOptions = append(passengerOptions, label)
	}
	f.passengersSelect = widget.NewSelect(passengerOptions, nil)
	f.passengersSelect.SetSelectedIndex(0)

	searchButton := widget.NewButtonWithIcon("Search Trains", components.IconSearch.Resource(), func() {
		f.submit()
	})
	searchButton.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("From", f.originSelect),
		widget.NewFormItem("To", f.destinationSelect),
		widget.NewFormItem("Travel Date", f.dateEntry),
		widget.NewFormItem("Passengers", f.passengersSelect),
	)

	routes := container.NewGridWithColumns(len(popularRoutes))
	for _, route := range popularRoutes {
		routes.Add(f.popularRouteCard(route))
	}

	title := widget.NewLabel("Journey by Rail, Simplified")
	title.TextStyle = fyne.TextStyle{Bold: true}
	subtitle := widget.NewLabel("Book train tickets quickly and easily with RailRoute")

	popularHeader := widget.NewLabel("Popular Routes")
	popularHeader.TextStyle = fyne.TextStyle{Bold: true}

	f.content = container.NewVBox(
		title,
		subtitle,
		form,
		container.NewHBox(layout.NewSpacer(), searchButton),
		widget.NewSeparator(),
		popularHeader,
		routes,
	)
}

func (f *SearchForm) popularRouteCard(route popularRoute) fyne.CanvasObject {
	detail := widget.NewLabel(fmt.Sprintf("%s · from $%d", route.Duration, route.Price))
	book := widget.NewButton("Book Now", func() {
		f.selectPopularRoute(route)
	})
	return widget.NewCard(route.From+" → "+route.To, "",
		container.NewVBox(detail, book),
	)
}

// submit validates the form and fires the search. Each validation failure
// surfaces as an error toast and leaves the form untouched.
func (f *SearchForm) submit() {
	origin := f.originSelect.Selected
	destination := f.destinationSelect.Selected

	if origin == "" || destination == "" {
		f.toast(dialogs.KindError, "Please select both origin and destination stations")
		return
	}
	if origin == destination {
		f.toast(dialogs.KindError, "Origin and destination cannot be the same")
		return
	}
	if !validTravelDate(f.dateEntry.Text) {
		f.toast(dialogs.KindError, "Please choose a valid travel date (today or later)")
		return
	}

	f.toast(dialogs.KindSuccess, "Searching for trains. Results will appear shortly!")
	f.search(origin, destination)
}

// selectPopularRoute fills the selectors from the card and searches
// immediately, skipping form validation since the route is known good.
func (f *SearchForm) selectPopularRoute(route popularRoute) {
	f.originSelect.SetSelected(route.From)
	f.destinationSelect.SetSelected(route.To)
	f.toast(dialogs.KindInfo, fmt.Sprintf("Selected route: %s to %s", route.From, route.To))
	f.search(route.From, route.To)
}

func (f *SearchForm) search(origin, destination string) {
	query := catalog.Query{
		Origin:      origin,
		Destination: destination,
		Date:        f.dateEntry.Text,
		Passengers:  f.passengersSelect.SelectedIndex() + 1,
	}
	debuglog.InfoLog("searching trains: %s -> %s on %s (%d passengers)",
		query.Origin, query.Destination, query.Date, query.Passengers)
	f.onSearch(query)
}

// validTravelDate accepts YYYY-MM-DD dates from today on.
func validTravelDate(raw string) bool {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return false
	}
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	return !d.Before(today)
}

func (f *SearchForm) toast(kind dialogs.Kind, message string) {
	dialogs.Toast(f.controller.Application, f.controller.MainWindow, kind, message)
}
