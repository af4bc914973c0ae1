package console

import (
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
)

// Status prints the backend mode and each resource's fallback counters.
func (a *App) Status() {
	a.printf("Backend: %s\n", a.Mode())
	for _, st := range []fallback.Status{
		a.svc.Clubs.Status(),
		a.svc.Memberships.Status(),
		a.svc.Admins.Status(),
		a.svc.BoardMembers.Status(),
		a.svc.Committees.Status(),
	} {
		a.printf("%-14s %-9s fallback reads %d, writes %d", st.Source, st.Mode, st.FallbackReads, st.FallbackWrites)
		if st.BreakerOpen {
			a.printf(", breaker open")
		}
		if st.Diverged {
			a.printf(", diverged from backend")
		}
		a.println()
		switch {
		case st.LastError == "":
		case st.LastFallbackAt.IsZero():
			a.printf("  last error: %s\n", st.LastError)
		default:
			a.printf("  last error at %s: %s\n", st.LastFallbackAt.Format("15:04:05"), st.LastError)
		}
	}
}
