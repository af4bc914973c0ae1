// Package dashboard is the admin dashboard view model: the admin, board member
// and committee lists, their stats, and the add/edit/delete form flows with the
// messages shown to the operator.
package dashboard

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/app/admins"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/adminsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
)

const (
	MsgLoadAdmins       = "Failed to load admins"
	MsgLoadBoardMembers = "Failed to load board members"
	MsgLoadCommittees   = "Failed to load committees"
)

const (
	MsgAdminAdded        = "Admin added successfully"
	MsgAdminUpdated      = "Admin updated successfully"
	MsgAdminDeleted      = "Admin deleted successfully"
	MsgAdminCreateFailed = "Failed to create admin"
	MsgAdminUpdateFailed = "Failed to update admin"
	MsgAdminDeleteFailed = "Failed to delete admin"
	ConfirmDeleteAdmin   = "Are you sure you want to delete this admin?"
)

const (
	MsgBoardAdded        = "Board member added successfully"
	MsgBoardUpdated      = "Board member updated successfully"
	MsgBoardDeleted      = "Board member deleted successfully"
	MsgBoardCreateFailed = "Failed to create board member"
	MsgBoardUpdateFailed = "Failed to update board member"
	MsgBoardDeleteFailed = "Failed to delete board member"
	ConfirmDeleteBoard   = "Are you sure you want to delete this board member?"
)

const (
	MsgCommitteeCreated      = "Committee created successfully"
	MsgCommitteeUpdated      = "Committee updated successfully"
	MsgCommitteeDeleted      = "Committee deleted successfully"
	MsgCommitteeCreateFailed = "Failed to create committee"
	MsgCommitteeUpdateFailed = "Failed to update committee"
	MsgCommitteeDeleteFailed = "Failed to delete committee"
	ConfirmDeleteCommittee   = "Are you sure you want to delete this committee?"
)

type AdminService interface {
	List(ctx context.Context) ([]domain.Admin, error)
	Create(ctx context.Context, req adminsource.CreateAdminRequest) (domain.Admin, error)
	Update(ctx context.Context, id domain.AdminID, req adminsource.UpdateAdminRequest) (domain.Admin, error)
	Delete(ctx context.Context, id domain.AdminID) error
}

type BoardMemberService interface {
	List(ctx context.Context) ([]domain.BoardMember, error)
	Create(ctx context.Context, req boardmembersource.CreateBoardMemberRequest) (domain.BoardMember, error)
	Update(ctx context.Context, id domain.BoardMemberID, req boardmembersource.UpdateBoardMemberRequest) (domain.BoardMember, error)
	Delete(ctx context.Context, id domain.BoardMemberID) error
}

type CommitteeService interface {
	List(ctx context.Context) ([]domain.Committee, error)
	Create(ctx context.Context, req committeesource.CreateCommitteeRequest) (domain.Committee, error)
	Update(ctx context.Context, id domain.CommitteeID, req committeesource.UpdateCommitteeRequest) (domain.Committee, error)
	Delete(ctx context.Context, id domain.CommitteeID) error
}

// ConfirmFunc asks the operator to confirm a destructive action.
type ConfirmFunc func(prompt string) bool

type Stats struct {
	TotalAdmins        int
	TotalBoardMembers  int
	TotalCommittees    int
	ActiveBoardMembers int
}

// Model is not safe for concurrent use; it belongs to a single console session.
type Model struct {
	admins     AdminService
	boards     BoardMemberService
	committees CommitteeService
	clk        clock.Clock
	log        *zap.Logger

	Admins       []domain.Admin
	BoardMembers []domain.BoardMember
	Committees   []domain.Committee
	Stats        Stats

	// Error and Success hold the message of the most recent action.
	Error   string
	Success string
}

func New(a AdminService, b BoardMemberService, c CommitteeService, clk clock.Clock, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	return &Model{admins: a, boards: b, committees: c, clk: clk, log: log.Named("dashboard")}
}

// Load fetches all three lists. A failing list keeps its previous contents and
// sets Error; when several fail the last message wins.
func (m *Model) Load(ctx context.Context) {
	m.Error = ""

	if as, err := m.admins.List(ctx); err != nil {
		m.fail(MsgLoadAdmins, err)
	} else {
		m.Admins = as
	}
	if bs, err := m.boards.List(ctx); err != nil {
		m.fail(MsgLoadBoardMembers, err)
	} else {
		m.BoardMembers = bs
	}
	if cs, err := m.committees.List(ctx); err != nil {
		m.fail(MsgLoadCommittees, err)
	} else {
		m.Committees = cs
	}
	m.refreshStats()
}

func (m *Model) refreshStats() {
	active := 0
	for _, b := range m.BoardMembers {
		if b.IsActive {
			active++
		}
	}
	m.Stats = Stats{
		TotalAdmins:        len(m.Admins),
		TotalBoardMembers:  len(m.BoardMembers),
		TotalCommittees:    len(m.Committees),
		ActiveBoardMembers: active,
	}
}

func (m *Model) fail(msg string, err error) {
	m.Error = msg
	m.log.Warn(msg, zap.Error(err))
}

func (m *Model) begin() {
	m.Error = ""
	m.Success = ""
}

func (m *Model) done(msg string) {
	m.Success = msg
	m.refreshStats()
}

// Admins

type AdminForm struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Department  string
	AdminLevel  string
	Permissions string // comma separated
}

// AdminEditForm omits email and password, which cannot be changed from the dashboard.
type AdminEditForm struct {
	FirstName  string
	LastName   string
	Department string
	AdminLevel string
}

func (m *Model) AddAdmin(ctx context.Context, f AdminForm) error {
	m.begin()
	created, err := m.admins.Create(ctx, adminsource.CreateAdminRequest{
		Email:       f.Email,
		Password:    f.Password,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Department:  optionalPtr(f.Department),
		AdminLevel:  optionalPtr(f.AdminLevel),
		Permissions: admins.ParsePermissions(f.Permissions),
	})
	if err != nil {
		m.fail(MsgAdminCreateFailed, err)
		return err
	}
	m.Admins = append(m.Admins, created)
	m.done(MsgAdminAdded)
	return nil
}

// EditAdminForm prefills the edit form from a.
func EditAdminForm(a domain.Admin) AdminEditForm {
	return AdminEditForm{
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Department: deref(a.Department),
		AdminLevel: deref(a.AdminLevel),
	}
}

func (m *Model) EditAdmin(ctx context.Context, id domain.AdminID, f AdminEditForm) error {
	m.begin()
	updated, err := m.admins.Update(ctx, id, adminsource.UpdateAdminRequest{
		FirstName:  domain.Some(f.FirstName),
		LastName:   domain.Some(f.LastName),
		Department: optional(f.Department),
		AdminLevel: optional(f.AdminLevel),
	})
	if err != nil {
		m.fail(MsgAdminUpdateFailed, err)
		return err
	}
	replace(m.Admins, updated, func(a domain.Admin) bool { return a.ID == id })
	m.done(MsgAdminUpdated)
	return nil
}

// DeleteAdmin reports false without calling the backend if confirm declines.
func (m *Model) DeleteAdmin(ctx context.Context, id domain.AdminID, confirm ConfirmFunc) (bool, error) {
	if !confirm(ConfirmDeleteAdmin) {
		return false, nil
	}
	m.begin()
	if err := m.admins.Delete(ctx, id); err != nil {
		m.fail(MsgAdminDeleteFailed, err)
		return true, err
	}
	m.Admins = remove(m.Admins, func(a domain.Admin) bool { return a.ID == id })
	m.done(MsgAdminDeleted)
	return true, nil
}

// Board members

type BoardMemberForm struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	ClubID    string
	Position  string
	JoinDate  string
	Season    string
}

// NewBoardMemberForm returns an empty form whose season defaults to the current year.
func (m *Model) NewBoardMemberForm() BoardMemberForm {
	return BoardMemberForm{Season: strconv.Itoa(m.clk.Now().Year())}
}

// EditBoardMemberForm prefills the edit form from b. The password is left blank.
func (m *Model) EditBoardMemberForm(b domain.BoardMember) BoardMemberForm {
	f := BoardMemberForm{
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Position:  b.Position,
		JoinDate:  b.JoinDate,
		Season:    b.Season,
	}
	if b.ClubID > 0 {
		f.ClubID = strconv.FormatInt(int64(b.ClubID), 10)
	}
	if f.Season == "" {
		f.Season = strconv.Itoa(m.clk.Now().Year())
	}
	return f
}

func (m *Model) AddBoardMember(ctx context.Context, f BoardMemberForm) error {
	m.begin()
	created, err := m.boards.Create(ctx, boardmembersource.CreateBoardMemberRequest{
		Email:     f.Email,
		Password:  f.Password,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Position:  f.Position,
		JoinDate:  f.JoinDate,
		Season:    f.Season,
		ClubID:    domain.ClubID(parseID(f.ClubID)),
	})
	if err != nil {
		m.fail(MsgBoardCreateFailed, err)
		return err
	}
	m.BoardMembers = append(m.BoardMembers, created)
	m.done(MsgBoardAdded)
	return nil
}

// EditBoardMember sends every form field; the password only when one was typed.
func (m *Model) EditBoardMember(ctx context.Context, id domain.BoardMemberID, f BoardMemberForm) error {
	m.begin()
	req := boardmembersource.UpdateBoardMemberRequest{
		Email:     domain.Some(f.Email),
		FirstName: domain.Some(f.FirstName),
		LastName:  domain.Some(f.LastName),
		Position:  domain.Some(f.Position),
		JoinDate:  domain.Some(f.JoinDate),
		Season:    domain.Some(f.Season),
		ClubID:    domain.Some(domain.ClubID(parseID(f.ClubID))),
	}
	if f.Password != "" {
		req.Password = domain.Some(f.Password)
	}
	updated, err := m.boards.Update(ctx, id, req)
	if err != nil {
		m.fail(MsgBoardUpdateFailed, err)
		return err
	}
	replace(m.BoardMembers, updated, func(b domain.BoardMember) bool { return b.ID == id })
	m.done(MsgBoardUpdated)
	return nil
}

func (m *Model) DeleteBoardMember(ctx context.Context, id domain.BoardMemberID, confirm ConfirmFunc) (bool, error) {
	if !confirm(ConfirmDeleteBoard) {
		return false, nil
	}
	m.begin()
	if err := m.boards.Delete(ctx, id); err != nil {
		m.fail(MsgBoardDeleteFailed, err)
		return true, err
	}
	m.BoardMembers = remove(m.BoardMembers, func(b domain.BoardMember) bool { return b.ID == id })
	m.done(MsgBoardDeleted)
	return true, nil
}

// Committees

type CommitteeForm struct {
	Name        string
	ClubID      string
	Description string
	HeadID      string // blank for no head
}

func EditCommitteeForm(c domain.Committee) CommitteeForm {
	f := CommitteeForm{Name: c.Name, Description: c.Description}
	if c.ClubID > 0 {
		f.ClubID = strconv.FormatInt(int64(c.ClubID), 10)
	}
	if c.HeadID > 0 {
		f.HeadID = strconv.FormatInt(int64(c.HeadID), 10)
	}
	return f
}

func (m *Model) AddCommittee(ctx context.Context, f CommitteeForm) error {
	m.begin()
	created, err := m.committees.Create(ctx, committeesource.CreateCommitteeRequest{
		Name:        f.Name,
		Description: f.Description,
		ClubID:      domain.ClubID(parseID(f.ClubID)),
		HeadID:      domain.BoardMemberID(parseID(f.HeadID)),
	})
	if err != nil {
		m.fail(MsgCommitteeCreateFailed, err)
		return err
	}
	m.Committees = append(m.Committees, created)
	m.done(MsgCommitteeCreated)
	return nil
}

func (m *Model) EditCommittee(ctx context.Context, id domain.CommitteeID, f CommitteeForm) error {
	m.begin()
	req := committeesource.UpdateCommitteeRequest{
		Name:        domain.Some(f.Name),
		Description: domain.Some(f.Description),
		ClubID:      domain.Some(domain.ClubID(parseID(f.ClubID))),
		HeadID:      domain.Null[domain.BoardMemberID](),
	}
	if strings.TrimSpace(f.HeadID) != "" {
		req.HeadID = domain.Some(domain.BoardMemberID(parseID(f.HeadID)))
	}
	updated, err := m.committees.Update(ctx, id, req)
	if err != nil {
		m.fail(MsgCommitteeUpdateFailed, err)
		return err
	}
	replace(m.Committees, updated, func(c domain.Committee) bool { return c.ID == id })
	m.done(MsgCommitteeUpdated)
	return nil
}

func (m *Model) DeleteCommittee(ctx context.Context, id domain.CommitteeID, confirm ConfirmFunc) (bool, error) {
	if !confirm(ConfirmDeleteCommittee) {
		return false, nil
	}
	m.begin()
	if err := m.committees.Delete(ctx, id); err != nil {
		m.fail(MsgCommitteeDeleteFailed, err)
		return true, err
	}
	m.Committees = remove(m.Committees, func(c domain.Committee) bool { return c.ID == id })
	m.done(MsgCommitteeDeleted)
	return true, nil
}

// parseID returns 0 for blank or malformed input; the service rejects it.
func parseID(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func optional(s string) domain.Optional[string] {
	if strings.TrimSpace(s) == "" {
		return domain.Null[string]()
	}
	return domain.Some(s)
}

func optionalPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func replace[T any](items []T, v T, match func(T) bool) {
	for i := range items {
		if match(items[i]) {
			items[i] = v
			return
		}
	}
}

func remove[T any](items []T, match func(T) bool) []T {
	out := items[:0:0]
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}
