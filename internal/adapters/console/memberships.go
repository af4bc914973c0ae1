package console

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
)

const (
	MsgApplied           = "Application submitted successfully"
	MsgApplyFailed       = "Failed to submit application"
	MsgWithdrawn         = "Application withdrawn successfully"
	MsgWithdrawFailed    = "Failed to withdraw application"
	MsgNoApplications    = "You have no applications"
	ConfirmWithdrawApply = "Are you sure you want to withdraw this application?"
)

// Apply submits an application for the current user.
func (a *App) Apply(ctx context.Context, args []string) {
	clubID, ok := a.idArg(args, "apply <clubId>")
	if !ok {
		return
	}
	m, err := a.svc.Memberships.Apply(ctx, membershipsource.MembershipRequest{
		UserID: a.userID,
		ClubID: domain.ClubID(clubID),
	})
	if err != nil {
		a.fail(MsgApplyFailed, err)
		return
	}
	a.printf("%s (#%d)\n", MsgApplied, m.ID)
}

func (a *App) Withdraw(ctx context.Context, args []string) {
	id, ok := a.idArg(args, "withdraw <id>")
	if !ok {
		return
	}
	if !a.confirm(ConfirmWithdrawApply) {
		return
	}
	if err := a.svc.Memberships.Withdraw(ctx, domain.MembershipID(id)); err != nil {
		a.fail(MsgWithdrawFailed, err)
		return
	}
	a.println(MsgWithdrawn)
}

// Mine lists the current user's applications. It never fails.
func (a *App) Mine(ctx context.Context) {
	ms := a.svc.Memberships.GetMyMemberships(ctx, a.userID)
	if len(ms) == 0 {
		a.println(MsgNoApplications)
		return
	}
	for _, m := range ms {
		a.printf("#%-4d club %-4d joined %s\n", m.ID, m.ClubID, m.JoinedAt)
	}
}
