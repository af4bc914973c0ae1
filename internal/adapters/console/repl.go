package console

import (
	"context"
	"strconv"
	"strings"
)

const helpText = `Clubs:
  clubs [page] [size]      list clubs
  club <id>                show a club
  search <name>            search clubs by name
  category <category>      list clubs in a category
  addclub                  create a club
  editclub <id>            edit a club
  delclub <id>             delete a club
Applications:
  apply <clubId>           apply to a club as the current user
  withdraw <id>            withdraw an application
  mine                     list your applications
Administration:
  dashboard                show stats, admins, board members and committees
  addadmin | editadmin <id> | deladmin <id>
  addboard | editboard <id> | delboard <id>
  addcommittee | editcommittee <id> | delcommittee <id>
Other:
  events                   events management
  media                    media management
  manage                   clubs management
  review                   applications review
  status                   backend and fallback status
  help                     show this help
  exit | quit              leave the program`

// Run reads commands until EOF or exit.
func (a *App) Run(ctx context.Context) {
	a.println("Type 'help' for the list of commands.")
	for {
		a.printf("clubs [%s]> ", a.Mode())
		line, err := readLine(a.in)
		if err != nil {
			a.println()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if !a.dispatch(ctx, parts[0], parts[1:]) {
			return
		}
	}
}

// dispatch runs one command and reports whether the loop should continue.
// Command handlers print their own errors.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		a.println(helpText)

	case "clubs":
		a.ListClubs(ctx, args)
	case "club":
		a.ShowClub(ctx, args)
	case "search":
		a.SearchClubs(ctx, args)
	case "category":
		a.ClubsByCategory(ctx, args)
	case "addclub":
		a.AddClub(ctx)
	case "editclub":
		a.EditClub(ctx, args)
	case "delclub":
		a.DeleteClub(ctx, args)

	case "apply":
		a.Apply(ctx, args)
	case "withdraw":
		a.Withdraw(ctx, args)
	case "mine":
		a.Mine(ctx)

	case "dashboard":
		a.Dashboard(ctx)
	case "addadmin":
		a.AddAdmin(ctx)
	case "editadmin":
		a.EditAdmin(ctx, args)
	case "deladmin":
		a.DeleteAdmin(ctx, args)
	case "addboard":
		a.AddBoardMember(ctx)
	case "editboard":
		a.EditBoardMember(ctx, args)
	case "delboard":
		a.DeleteBoardMember(ctx, args)
	case "addcommittee":
		a.AddCommittee(ctx)
	case "editcommittee":
		a.EditCommittee(ctx, args)
	case "delcommittee":
		a.DeleteCommittee(ctx, args)

	case "events":
		a.println(TitleEvents)
	case "media":
		a.println(TitleMedia)
	case "manage":
		a.println(TitleClubsManage)
	case "review":
		a.println(TitleApplications)
	case "status":
		a.Status()

	case "exit", "quit":
		a.println("Bye!")
		return false

	default:
		a.println("Unknown command:", cmd)
	}
	return true
}

// idArg parses args[0] as a positive id, printing usage when it is missing or malformed.
func (a *App) idArg(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		a.println("usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		a.println("invalid id:", args[0])
		return 0, false
	}
	return id, true
}
