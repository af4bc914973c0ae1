package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/nu-student-clubs/clubs-admin/internal/app/dashboard"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

const (
	MsgAdminNotFound     = "Admin not found"
	MsgBoardNotFound     = "Board member not found"
	MsgCommitteeNotFound = "Committee not found"
)

// Dashboard reloads every list and prints stats and tables.
func (a *App) Dashboard(ctx context.Context) {
	a.dash.Load(ctx)
	if a.dash.Error != "" {
		a.println(a.dash.Error)
	}
	s := a.dash.Stats
	a.printf("Admins: %d  Board members: %d (%d active)  Committees: %d\n",
		s.TotalAdmins, s.TotalBoardMembers, s.ActiveBoardMembers, s.TotalCommittees)

	a.println("\nAdmins")
	for _, ad := range a.dash.Admins {
		a.printf("#%-4d %-24s %-28s %s\n", ad.ID, ad.FullName(), ad.Email, strings.Join(ad.Permissions(), ","))
	}
	a.println("\nBoard members")
	for _, b := range a.dash.BoardMembers {
		active := "inactive"
		if b.IsActive {
			active = "active"
		}
		a.printf("#%-4d %-24s %-16s club %-4d %s %s\n", b.ID, b.FullName(), b.Position, b.ClubID, b.Season, active)
	}
	a.println("\nCommittees")
	for _, c := range a.dash.Committees {
		head := "-"
		if c.HeadID > 0 {
			head = "#" + itoa(int64(c.HeadID))
		}
		a.printf("#%-4d %-24s club %-4d head %s\n", c.ID, c.Name, c.ClubID, head)
	}
}

// report prints the dashboard's outcome message for the last action.
func (a *App) report(err error) {
	if err != nil {
		a.fail(a.dash.Error, err)
		return
	}
	a.println(a.dash.Success)
}

// ensureLoaded loads the dashboard lists once so edits can prefill their forms.
func (a *App) ensureLoaded(ctx context.Context) {
	if len(a.dash.Admins) == 0 && len(a.dash.BoardMembers) == 0 && len(a.dash.Committees) == 0 {
		a.dash.Load(ctx)
	}
}

// Admins

func (a *App) AddAdmin(ctx context.Context) {
	var f dashboard.AdminForm
	if err := a.ask(
		field{"Email", "", &f.Email},
		secretField{"Password", &f.Password},
		field{"First name", "", &f.FirstName},
		field{"Last name", "", &f.LastName},
		field{"Department", "", &f.Department},
		field{"Admin level", "", &f.AdminLevel},
		field{"Permissions (comma separated)", "", &f.Permissions},
	); err != nil {
		return
	}
	a.report(a.dash.AddAdmin(ctx, f))
}

func (a *App) EditAdmin(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "editadmin <id>")
	if !ok {
		return
	}
	a.ensureLoaded(ctx)
	current, found := findByID(a.dash.Admins, func(ad domain.Admin) bool { return int64(ad.ID) == id })
	if !found {
		a.println(MsgAdminNotFound)
		return
	}
	f := dashboard.EditAdminForm(current)
	if err := a.ask(
		field{"First name", f.FirstName, &f.FirstName},
		field{"Last name", f.LastName, &f.LastName},
		field{"Department", f.Department, &f.Department},
		field{"Admin level", f.AdminLevel, &f.AdminLevel},
	); err != nil {
		return
	}
	a.report(a.dash.EditAdmin(ctx, current.ID, f))
}

func (a *App) DeleteAdmin(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "deladmin <id>")
	if !ok {
		return
	}
	confirmed, err := a.dash.DeleteAdmin(ctx, domain.AdminID(id), a.confirm)
	if confirmed {
		a.report(err)
	}
}

// Board members

func (a *App) AddBoardMember(ctx context.Context) {
	f := a.dash.NewBoardMemberForm()
	if err := a.boardForm(&f, false); err != nil {
		return
	}
	a.report(a.dash.AddBoardMember(ctx, f))
}

func (a *App) EditBoardMember(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "editboard <id>")
	if !ok {
		return
	}
	a.ensureLoaded(ctx)
	current, found := findByID(a.dash.BoardMembers, func(b domain.BoardMember) bool { return int64(b.ID) == id })
	if !found {
		a.println(MsgBoardNotFound)
		return
	}
	f := a.dash.EditBoardMemberForm(current)
	if err := a.boardForm(&f, true); err != nil {
		return
	}
	a.report(a.dash.EditBoardMember(ctx, current.ID, f))
}

func (a *App) DeleteBoardMember(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "delboard <id>")
	if !ok {
		return
	}
	confirmed, err := a.dash.DeleteBoardMember(ctx, domain.BoardMemberID(id), a.confirm)
	if confirmed {
		a.report(err)
	}
}

func (a *App) boardForm(f *dashboard.BoardMemberForm, editing bool) error {
	passwordPrompt := "Password"
	if editing {
		passwordPrompt = "Password (blank keeps the current one)"
	}
	return a.ask(
		field{"Email", f.Email, &f.Email},
		secretField{passwordPrompt, &f.Password},
		field{"First name", f.FirstName, &f.FirstName},
		field{"Last name", f.LastName, &f.LastName},
		field{"Club ID", f.ClubID, &f.ClubID},
		field{"Position", f.Position, &f.Position},
		field{"Join date (YYYY-MM-DD)", f.JoinDate, &f.JoinDate},
		field{"Season", f.Season, &f.Season},
	)
}

// Committees

func (a *App) AddCommittee(ctx context.Context) {
	var f dashboard.CommitteeForm
	if err := a.committeeForm(&f); err != nil {
		return
	}
	a.report(a.dash.AddCommittee(ctx, f))
}

func (a *App) EditCommittee(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "editcommittee <id>")
	if !ok {
		return
	}
	a.ensureLoaded(ctx)
	current, found := findByID(a.dash.Committees, func(c domain.Committee) bool { return int64(c.ID) == id })
	if !found {
		a.println(MsgCommitteeNotFound)
		return
	}
	f := dashboard.EditCommitteeForm(current)
	if err := a.committeeForm(&f); err != nil {
		return
	}
	a.report(a.dash.EditCommittee(ctx, current.ID, f))
}

func (a *App) DeleteCommittee(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "delcommittee <id>")
	if !ok {
		return
	}
	confirmed, err := a.dash.DeleteCommittee(ctx, domain.CommitteeID(id), a.confirm)
	if confirmed {
		a.report(err)
	}
}

// committeeForm accepts "-" for the head to clear it.
func (a *App) committeeForm(f *dashboard.CommitteeForm) error {
	if err := a.ask(
		field{"Name", f.Name, &f.Name},
		field{"Club ID", f.ClubID, &f.ClubID},
		field{"Description", f.Description, &f.Description},
		field{"Head board member ID (- for none)", f.HeadID, &f.HeadID},
	); err != nil {
		return err
	}
	if f.HeadID == "-" {
		f.HeadID = ""
	}
	return nil
}

// Form plumbing

type prompter interface {
	prompt(a *App) error
}

type field struct {
	label   string
	current string
	dst     *string
}

func (f field) prompt(a *App) error {
	v, err := AskDefault(a.in, a.out, f.label, f.current)
	if err != nil {
		return err
	}
	*f.dst = v
	return nil
}

type secretField struct {
	label string
	dst   *string
}

func (f secretField) prompt(a *App) error {
	v, err := AskSecret(a.in, a.out, f.label, a.fd)
	if err != nil {
		return err
	}
	*f.dst = v
	return nil
}

// ask prompts each field in order and stops at the first read error.
func (a *App) ask(fields ...prompter) error {
	for _, f := range fields {
		if err := f.prompt(a); err != nil {
			a.println()
			return err
		}
	}
	return nil
}

func findByID[T any](items []T, match func(T) bool) (T, bool) {
	for _, it := range items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
