package console

import (
	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/gateway"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/adminstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/boardmemberstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clubstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/committeestore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/membershipstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/remote"
	"github.com/nu-student-clubs/clubs-admin/internal/app/admins"
	"github.com/nu-student-clubs/clubs-admin/internal/app/boardmembers"
	"github.com/nu-student-clubs/clubs-admin/internal/app/clubs"
	"github.com/nu-student-clubs/clubs-admin/internal/app/committees"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/app/memberships"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/config"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
)

// NewServices pairs a remote source over r with a freshly seeded fallback
// store for every resource. Coverage overrides in cfg are keyed by the
// resource names shown by the status command.
func NewServices(r gateway.Requester, cfg config.Fallback, clk clock.Clock, log *zap.Logger) Services {
	if log == nil {
		log = zap.NewNop()
	}
	opts := func(resource string) fallback.Options {
		return fallback.Options{
			Coverage:         fallback.Coverage(cfg.Coverage[resource]),
			BreakerThreshold: cfg.BreakerThreshold,
			BreakerCooldown:  cfg.BreakerCooldown,
		}
	}
	return Services{
		Clubs: clubs.NewService(
			remote.NewClubSource(r), clubstore.NewStore(clk), log, clk, opts("clubs")),
		Memberships: memberships.NewService(
			remote.NewMembershipSource(r), membershipstore.NewStore(clk), log, clk, opts("memberships")),
		Admins: admins.NewService(
			remote.NewAdminSource(r), adminstore.NewStore(clk), log, clk, opts("admins")),
		BoardMembers: boardmembers.NewService(
			remote.NewBoardMemberSource(r), boardmemberstore.NewStore(), log, clk, opts("board-members")),
		Committees: committees.NewService(
			remote.NewCommitteeSource(r), committeestore.NewStore(), log, clk, opts("committees")),
	}
}
