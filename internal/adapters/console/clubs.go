package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

// Pages that only show their title.
const (
	TitleEvents       = "Events Management"
	TitleMedia        = "Media Management"
	TitleClubsManage  = "Clubs Management"
	TitleApplications = "Applications Review"
)

const (
	MsgClubCreated      = "Club created successfully"
	MsgClubUpdated      = "Club updated successfully"
	MsgClubDeleted      = "Club deleted successfully"
	MsgClubCreateFailed = "Failed to create club"
	MsgClubUpdateFailed = "Failed to update club"
	MsgClubDeleteFailed = "Failed to delete club"
	MsgLoadClubs        = "Failed to load clubs"
	MsgClubNotFound     = "Club not found"
	ConfirmDeleteClub   = "Are you sure you want to delete this club?"
)

func (a *App) ListClubs(ctx context.Context, args []string) {
	nums := []int{0, domain.DefaultPageSize}
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if i >= len(nums) || err != nil || n < 0 {
			a.println("usage: clubs [page] [size]")
			return
		}
		nums[i] = n
	}
	page, size := nums[0], nums[1]
	p, err := a.svc.Clubs.List(ctx, page, size)
	if err != nil {
		a.fail(MsgLoadClubs, err)
		return
	}
	a.printClubs(p.Content)
	a.printf("page %d of %d (%d clubs)\n", p.CurrentPage+1, max(p.TotalPages, 1), p.TotalElements)
}

func (a *App) ShowClub(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "club <id>")
	if !ok {
		return
	}
	c, err := a.svc.Clubs.Get(ctx, domain.ClubID(id))
	if err != nil {
		a.clubError(err, MsgLoadClubs)
		return
	}
	a.printf("#%d %s\n", c.ID, c.Name)
	a.printf("  category:    %s\n", c.Category)
	a.printf("  president:   %s\n", c.President)
	a.printf("  email:       %s\n", c.Email)
	a.printf("  description: %s\n", c.Description)
	a.printf("  created:     %s\n", c.CreatedAt)
	a.printf("  updated:     %s\n", c.UpdatedAt)
}

func (a *App) SearchClubs(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.println("usage: search <name>")
		return
	}
	found, err := a.svc.Clubs.SearchByName(ctx, strings.Join(args, " "))
	if err != nil {
		a.fail(MsgLoadClubs, err)
		return
	}
	a.printClubs(found)
}

func (a *App) ClubsByCategory(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.println("usage: category <category>")
		return
	}
	found, err := a.svc.Clubs.ListByCategory(ctx, strings.Join(args, " "))
	if err != nil {
		a.fail(MsgLoadClubs, err)
		return
	}
	a.printClubs(found)
}

func (a *App) AddClub(ctx context.Context) {
	req, err := a.clubForm(domain.Club{})
	if err != nil {
		return
	}
	c, err := a.svc.Clubs.Create(ctx, req)
	if err != nil {
		a.fail(MsgClubCreateFailed, err)
		return
	}
	a.printf("%s (#%d)\n", MsgClubCreated, c.ID)
}

// EditClub prefills the form from the current record and sends a full replacement.
func (a *App) EditClub(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "editclub <id>")
	if !ok {
		return
	}
	current, err := a.svc.Clubs.Get(ctx, domain.ClubID(id))
	if err != nil {
		a.clubError(err, MsgClubUpdateFailed)
		return
	}
	req, err := a.clubForm(current)
	if err != nil {
		return
	}
	if _, err := a.svc.Clubs.Update(ctx, current.ID, req); err != nil {
		a.fail(MsgClubUpdateFailed, err)
		return
	}
	a.println(MsgClubUpdated)
}

func (a *App) DeleteClub(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "delclub <id>")
	if !ok {
		return
	}
	if !a.confirm(ConfirmDeleteClub) {
		return
	}
	if err := a.svc.Clubs.Delete(ctx, domain.ClubID(id)); err != nil {
		a.fail(MsgClubDeleteFailed, err)
		return
	}
	a.println(MsgClubDeleted)
}

func (a *App) clubForm(c domain.Club) (clubsource.ClubRequest, error) {
	var (
		req clubsource.ClubRequest
		err error
	)
	fields := []struct {
		prompt  string
		current string
		dst     *string
	}{
		{"Name", c.Name, &req.Name},
		{"Description", c.Description, &req.Description},
		{"President", c.President, &req.President},
		{"Email", c.Email, &req.Email},
		{"Category", c.Category, &req.Category},
	}
	for _, f := range fields {
		if *f.dst, err = AskDefault(a.in, a.out, f.prompt, f.current); err != nil {
			return clubsource.ClubRequest{}, err
		}
	}
	return req, nil
}

func (a *App) clubError(err error, msg string) {
	if errors.Is(err, source.ErrNotFound) {
		a.println(MsgClubNotFound)
		return
	}
	a.fail(msg, err)
}

func (a *App) printClubs(cs []domain.Club) {
	if len(cs) == 0 {
		a.println("No clubs found")
		return
	}
	for _, c := range cs {
		a.printf("#%-4d %-28s %-14s %s\n", c.ID, c.Name, c.Category, c.President)
	}
}
