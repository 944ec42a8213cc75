package navigation

import (
	"errors"
	"strings"
)

var ErrUnknownPage = errors.New("unknown page")

// Page identifica una pantalla. Conjunto cerrado: ParsePage rechaza lo demás.
type Page string

const (
	PageDashboard       Page = "dashboard"
	PageRegister        Page = "register"
	PageScan            Page = "scan"
	PageVaccinate       Page = "vaccinate"
	PagePetList         Page = "petlist"
	PagePetProfile      Page = "pet-profile"
	PageReportCase      Page = "report-case"
	PageVaccinatedToday Page = "vaccinated-today"
	PageReports         Page = "reports"
	PageAdmin           Page = "admin"
)

var pages = []Page{
	PageDashboard,
	PageRegister,
	PageScan,
	PageVaccinate,
	PagePetList,
	PagePetProfile,
	PageReportCase,
	PageVaccinatedToday,
	PageReports,
	PageAdmin,
}

func ParsePage(s string) (Page, error) {
	p := Page(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range pages {
		if p == known {
			return p, nil
		}
	}
	return "", ErrUnknownPage
}

// Pages devuelve todas las pantallas conocidas (copia).
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}
