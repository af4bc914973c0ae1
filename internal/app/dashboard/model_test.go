package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/adminstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/boardmemberstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/committeestore"
	"github.com/nu-student-clubs/clubs-admin/internal/app/admins"
	"github.com/nu-student-clubs/clubs-admin/internal/app/boardmembers"
	"github.com/nu-student-clubs/clubs-admin/internal/app/committees"
	"github.com/nu-student-clubs/clubs-admin/internal/app/dashboard"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
)

func yes(string) bool { return true }
func no(string) bool  { return false }

type fixture struct {
	model  *dashboard.Model
	admins *adminstore.Store
	boards *boardmemberstore.Store
	comms  *committeestore.Store
}

// newFixture wires the real services with in-memory stores playing the backend.
func newFixture(t *testing.T) fixture {
	t.Helper()
	clk := clock.NewManualClock(time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC))
	log := zap.NewNop()

	as := adminstore.NewStore(clk)
	bs := boardmemberstore.NewStore()
	cs := committeestore.NewStore()
	m := dashboard.New(
		admins.NewService(as, adminstore.NewStore(clk), log, clk, fallback.Options{}),
		boardmembers.NewService(bs, boardmemberstore.NewStore(), log, clk, fallback.Options{}),
		committees.NewService(cs, committeestore.NewStore(), log, clk, fallback.Options{}),
		clk, log,
	)
	return fixture{model: m, admins: as, boards: bs, comms: cs}
}

func TestModel_LoadComputesStats(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.model.Load(context.Background())

	want := dashboard.Stats{TotalAdmins: 2, TotalBoardMembers: 3, TotalCommittees: 2, ActiveBoardMembers: 2}
	if f.model.Stats != want {
		t.Fatalf("Stats=%+v, want %+v", f.model.Stats, want)
	}
	if f.model.Error != "" {
		t.Fatalf("Error=%q", f.model.Error)
	}
}

type brokenCommittees struct{ dashboard.CommitteeService }

func (brokenCommittees) List(context.Context) ([]domain.Committee, error) {
	return nil, errors.New("boom")
}

func TestModel_LoadReportsPerListFailure(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(0, 0).UTC())
	log := zap.NewNop()
	m := dashboard.New(
		admins.NewService(adminstore.NewStore(clk), adminstore.NewStore(clk), log, clk, fallback.Options{}),
		boardmembers.NewService(boardmemberstore.NewStore(), boardmemberstore.NewStore(), log, clk, fallback.Options{}),
		brokenCommittees{},
		clk, log,
	)
	m.Load(context.Background())
	if m.Error != dashboard.MsgLoadCommittees {
		t.Fatalf("Error=%q, want %q", m.Error, dashboard.MsgLoadCommittees)
	}
	if m.Stats.TotalAdmins != 2 || m.Stats.TotalCommittees != 0 {
		t.Fatalf("Stats=%+v", m.Stats)
	}
}

func TestModel_AddAdminSplitsPermissions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.model.Load(ctx)

	err := f.model.AddAdmin(ctx, dashboard.AdminForm{
		Email:       "nour@nu.edu.eg",
		Password:    "s3cret-pass",
		FirstName:   "Nour",
		LastName:    "Hassan",
		Permissions: "MANAGE_CLUBS, MANAGE_APPLICATIONS,",
	})
	if err != nil {
		t.Fatalf("AddAdmin() err=%v", err)
	}
	if f.model.Success != dashboard.MsgAdminAdded || f.model.Stats.TotalAdmins != 3 {
		t.Fatalf("Success=%q Stats=%+v", f.model.Success, f.model.Stats)
	}
	created := f.model.Admins[2]
	if !created.CanManageClubs || !created.CanManageApplications || created.CanManageAdmins {
		t.Fatalf("permissions=%v", created.Permissions())
	}
	if created.Department != nil {
		t.Fatalf("blank department stored as %q", *created.Department)
	}
}

func TestModel_AddAdminFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	err := f.model.AddAdmin(context.Background(), dashboard.AdminForm{Email: "bad"})
	if !errors.Is(err, fallback.ErrValidation) {
		t.Fatalf("AddAdmin() err=%v, want ErrValidation", err)
	}
	if f.model.Error != dashboard.MsgAdminCreateFailed || f.model.Success != "" {
		t.Fatalf("Error=%q Success=%q", f.model.Error, f.model.Success)
	}
}

func TestModel_EditAdminClearsBlankFields(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.model.Load(ctx)

	form := dashboard.EditAdminForm(f.model.Admins[0])
	if form.Department != "Student Affairs" {
		t.Fatalf("EditAdminForm()=%+v", form)
	}
	form.Department = ""
	form.LastName = "Farouk-Saleh"
	if err := f.model.EditAdmin(ctx, 1, form); err != nil {
		t.Fatalf("EditAdmin() err=%v", err)
	}
	got := f.model.Admins[0]
	if got.LastName != "Farouk-Saleh" || got.Department != nil || got.Email != "admin@nu.edu.eg" {
		t.Fatalf("edited admin=%+v", got)
	}
	if f.model.Success != dashboard.MsgAdminUpdated {
		t.Fatalf("Success=%q", f.model.Success)
	}
}

func TestModel_DeleteRequiresConfirmation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.model.Load(ctx)

	var prompt string
	done, err := f.model.DeleteAdmin(ctx, 2, func(p string) bool {
		prompt = p
		return false
	})
	if done || err != nil || prompt != dashboard.ConfirmDeleteAdmin {
		t.Fatalf("DeleteAdmin(declined) done=%v err=%v prompt=%q", done, err, prompt)
	}
	if _, err := f.admins.Get(ctx, 2); err != nil {
		t.Fatalf("admin deleted despite declined confirmation: %v", err)
	}

	done, err = f.model.DeleteAdmin(ctx, 2, yes)
	if !done || err != nil {
		t.Fatalf("DeleteAdmin() done=%v err=%v", done, err)
	}
	if len(f.model.Admins) != 1 || f.model.Stats.TotalAdmins != 1 || f.model.Success != dashboard.MsgAdminDeleted {
		t.Fatalf("after delete: admins=%d stats=%+v success=%q", len(f.model.Admins), f.model.Stats, f.model.Success)
	}

	done, err = f.model.DeleteAdmin(ctx, 2, yes)
	if !done || !errors.Is(err, fallback.ErrNotFound) || f.model.Error != dashboard.MsgAdminDeleteFailed {
		t.Fatalf("DeleteAdmin() again done=%v err=%v Error=%q", done, err, f.model.Error)
	}
}

func TestModel_BoardMemberFlows(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.model.Load(ctx)

	form := f.model.NewBoardMemberForm()
	if form.Season != "2026" {
		t.Fatalf("default season=%q, want 2026", form.Season)
	}
	form.Email = "youssef@nu.edu.eg"
	form.Password = "board-pass"
	form.FirstName = "Youssef"
	form.LastName = "Adel"
	form.ClubID = "2"
	form.Position = "Secretary"
	form.JoinDate = "2026-02-01"
	if err := f.model.AddBoardMember(ctx, form); err != nil {
		t.Fatalf("AddBoardMember() err=%v", err)
	}
	if f.model.Stats.TotalBoardMembers != 4 || f.model.Stats.ActiveBoardMembers != 3 {
		t.Fatalf("Stats=%+v", f.model.Stats)
	}

	created := f.model.BoardMembers[3]
	edit := f.model.EditBoardMemberForm(created)
	if edit.Password != "" || edit.ClubID != "2" {
		t.Fatalf("EditBoardMemberForm()=%+v", edit)
	}
	edit.Position = "Treasurer"
	if err := f.model.EditBoardMember(ctx, created.ID, edit); err != nil {
		t.Fatalf("EditBoardMember() err=%v", err)
	}
	stored, err := f.boards.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() err=%v", err)
	}
	if stored.Position != "Treasurer" || stored.Password != "board-pass" {
		t.Fatalf("stored=%+v, want position updated and password kept", stored)
	}

	bad := f.model.NewBoardMemberForm()
	bad.ClubID = "abc"
	if err := f.model.AddBoardMember(ctx, bad); err == nil {
		t.Fatalf("AddBoardMember(bad) err=nil")
	}
	if f.model.Error != dashboard.MsgBoardCreateFailed {
		t.Fatalf("Error=%q", f.model.Error)
	}

	if _, err := f.model.DeleteBoardMember(ctx, created.ID, yes); err != nil {
		t.Fatalf("DeleteBoardMember() err=%v", err)
	}
	if f.model.Stats.TotalBoardMembers != 3 || f.model.Success != dashboard.MsgBoardDeleted {
		t.Fatalf("Stats=%+v Success=%q", f.model.Stats, f.model.Success)
	}
}

func TestModel_CommitteeFlows(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.model.Load(ctx)

	if err := f.model.AddCommittee(ctx, dashboard.CommitteeForm{Name: "Media", ClubID: "1"}); err != nil {
		t.Fatalf("AddCommittee() err=%v", err)
	}
	if f.model.Success != dashboard.MsgCommitteeCreated || f.model.Stats.TotalCommittees != 3 {
		t.Fatalf("Success=%q Stats=%+v", f.model.Success, f.model.Stats)
	}

	form := dashboard.EditCommitteeForm(f.model.Committees[0])
	if form.HeadID != "2" || form.ClubID != "1" {
		t.Fatalf("EditCommitteeForm()=%+v", form)
	}
	form.HeadID = ""
	if err := f.model.EditCommittee(ctx, 1, form); err != nil {
		t.Fatalf("EditCommittee() err=%v", err)
	}
	if f.model.Committees[0].HeadID != 0 {
		t.Fatalf("head not cleared: %+v", f.model.Committees[0])
	}

	if done, _ := f.model.DeleteCommittee(ctx, 1, no); done {
		t.Fatalf("DeleteCommittee(declined) done=true")
	}
	if _, err := f.model.DeleteCommittee(ctx, 1, yes); err != nil {
		t.Fatalf("DeleteCommittee() err=%v", err)
	}
	if _, err := f.comms.Get(ctx, 1); !errors.Is(err, committeesource.ErrNotFound) {
		t.Fatalf("Get(1) err=%v, want ErrNotFound", err)
	}
	if f.model.Success != dashboard.MsgCommitteeDeleted {
		t.Fatalf("Success=%q", f.model.Success)
	}
}
