package navigation

// MenuEntry es una entrada del menú lateral.
type MenuEntry struct {
	ID    Page   `json:"id"`
	Label string `json:"label"`
}

// QuickAction es un botón del dashboard.
type QuickAction struct {
	ID          Page   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var baseMenu = []MenuEntry{
	{ID: PageDashboard, Label: "Dashboard"},
	{ID: PageRegister, Label: "Register New Pet"},
	{ID: PageScan, Label: "Scan Pet QR Code"},
	{ID: PageVaccinate, Label: "Record Vaccination"},
	{ID: PagePetList, Label: "View Pet List"},
	{ID: PageReportCase, Label: "Report Rabies Case"},
	{ID: PageVaccinatedToday, Label: "Vaccinated Today"},
	{ID: PageReports, Label: "Reports & Export"},
}

var adminMenuEntry = MenuEntry{ID: PageAdmin, Label: "User/Admin Settings"}

var baseQuickActions = []QuickAction{
	{ID: PageRegister, Title: "Register New Pet", Description: "Add a new pet to the system"},
	{ID: PageScan, Title: "Scan Pet QR Code", Description: "Scan QR to access pet records"},
	{ID: PageVaccinate, Title: "Record Rabies Vaccination", Description: "Record new vaccination"},
	{ID: PagePetList, Title: "View Pet List", Description: "Browse all registered pets"},
	{ID: PageReportCase, Title: "Report Rabies Case", Description: "Report a rabies case incident"},
	{ID: PageReports, Title: "Reports & Export", Description: "View analytics and export data"},
}

var adminQuickAction = QuickAction{ID: PageAdmin, Title: "User/Admin Settings", Description: "System administration"}

// Menu arma el menú para el rol: lista base + admin al final si corresponde.
// Siempre devuelve un slice nuevo; los callers pueden modificarlo.
func Menu(role Role) []MenuEntry {
	out := make([]MenuEntry, 0, len(baseMenu)+1)
	out = append(out, baseMenu...)
	switch role {
	case RoleAdmin:
		out = append(out, adminMenuEntry)
	case RoleVeterinarian, RoleUser:
	}
	return out
}

func QuickActions(role Role) []QuickAction {
	out := make([]QuickAction, 0, len(baseQuickActions)+1)
	out = append(out, baseQuickActions...)
	switch role {
	case RoleAdmin:
		out = append(out, adminQuickAction)
	case RoleVeterinarian, RoleUser:
	}
	return out
}
