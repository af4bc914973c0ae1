package oas

import (
	"fmt"
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/adminsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
)

// Clubs

func ClubFromDomain(c domain.Club) Club {
	return Club{
		Id:          int64(c.ID),
		Name:        c.Name,
		Description: c.Description,
		President:   c.President,
		Email:       c.Email,
		Category:    c.Category,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (c Club) ToDomain() domain.Club {
	return domain.Club{
		ID:          domain.ClubID(c.Id),
		Name:        c.Name,
		Description: c.Description,
		President:   c.President,
		Email:       c.Email,
		Category:    c.Category,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ClubsFromDomain(cs []domain.Club) []Club {
	out := make([]Club, 0, len(cs))
	for _, c := range cs {
		out = append(out, ClubFromDomain(c))
	}
	return out
}

func ClubsToDomain(cs []Club) []domain.Club {
	out := make([]domain.Club, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ToDomain())
	}
	return out
}

func ClubPageFromDomain(p domain.Page[domain.Club]) ClubPage {
	return ClubPage{
		Content:       ClubsFromDomain(p.Content),
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		CurrentPage:   p.CurrentPage,
	}
}

func (p ClubPage) ToDomain() domain.Page[domain.Club] {
	return domain.Page[domain.Club]{
		Content:       ClubsToDomain(p.Content),
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		CurrentPage:   p.CurrentPage,
	}
}

func ClubRequestFromPort(r clubsource.ClubRequest) ClubRequest {
	out := ClubRequest{
		Name:      r.Name,
		President: r.President,
		Email:     openapi_types.Email(r.Email),
		Category:  r.Category,
	}
	if r.Description != "" {
		d := r.Description
		out.Description = &d
	}
	return out
}

func (r ClubRequest) ToPort() clubsource.ClubRequest {
	out := clubsource.ClubRequest{
		Name:      r.Name,
		President: r.President,
		Email:     string(r.Email),
		Category:  r.Category,
	}
	if r.Description != nil {
		out.Description = *r.Description
	}
	return out
}

// Memberships

func MembershipFromDomain(m domain.Membership) Membership {
	return Membership{
		Id:       int64(m.ID),
		UserId:   int64(m.UserID),
		ClubId:   int64(m.ClubID),
		JoinedAt: m.JoinedAt,
	}
}

func (m Membership) ToDomain() domain.Membership {
	return domain.Membership{
		ID:       domain.MembershipID(m.Id),
		UserID:   domain.UserID(m.UserId),
		ClubID:   domain.ClubID(m.ClubId),
		JoinedAt: m.JoinedAt,
	}
}

func MembershipRequestFromPort(r membershipsource.MembershipRequest) MembershipRequest {
	return MembershipRequest{UserId: int64(r.UserID), ClubId: int64(r.ClubID)}
}

func (r MembershipRequest) ToPort() membershipsource.MembershipRequest {
	return membershipsource.MembershipRequest{UserID: domain.UserID(r.UserId), ClubID: domain.ClubID(r.ClubId)}
}

// Admins

// AdminFromDomain never copies the password onto the wire.
func AdminFromDomain(a domain.Admin) Admin {
	roles := a.Roles
	if roles == nil {
		roles = []string{}
	}
	return Admin{
		Id:                    int64(a.ID),
		Email:                 a.Email,
		FirstName:             a.FirstName,
		LastName:              a.LastName,
		Phone:                 a.Phone,
		ProfilePicture:        a.ProfilePicture,
		Active:                a.Active,
		Department:            a.Department,
		AdminLevel:            a.AdminLevel,
		CanManageAdmins:       a.CanManageAdmins,
		CanManageApplications: a.CanManageApplications,
		CanManageClubs:        a.CanManageClubs,
		Roles:                 roles,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func (a Admin) ToDomain() domain.Admin {
	return domain.Admin{
		ID:                    domain.AdminID(a.Id),
		Email:                 a.Email,
		Password:              a.Password,
		FirstName:             a.FirstName,
		LastName:              a.LastName,
		Phone:                 a.Phone,
		ProfilePicture:        a.ProfilePicture,
		Active:                a.Active,
		Department:            a.Department,
		AdminLevel:            a.AdminLevel,
		CanManageAdmins:       a.CanManageAdmins,
		CanManageApplications: a.CanManageApplications,
		CanManageClubs:        a.CanManageClubs,
		Roles:                 a.Roles,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func CreateAdminRequestFromPort(r adminsource.CreateAdminRequest) CreateAdminRequest {
	return CreateAdminRequest{
		Email:       openapi_types.Email(r.Email),
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Department:  r.Department,
		AdminLevel:  r.AdminLevel,
		Permissions: r.Permissions,
	}
}

func (r CreateAdminRequest) ToPort() adminsource.CreateAdminRequest {
	return adminsource.CreateAdminRequest{
		Email:       string(r.Email),
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Department:  r.Department,
		AdminLevel:  r.AdminLevel,
		Permissions: r.Permissions,
	}
}

func UpdateAdminRequestFromPort(r adminsource.UpdateAdminRequest) UpdateAdminRequest {
	return UpdateAdminRequest{
		Email:          toNullable(mapOptional(r.Email, toEmail)),
		Password:       toNullable(r.Password),
		FirstName:      toNullable(r.FirstName),
		LastName:       toNullable(r.LastName),
		Phone:          toNullable(r.Phone),
		ProfilePicture: toNullable(r.ProfilePicture),
		Department:     toNullable(r.Department),
		AdminLevel:     toNullable(r.AdminLevel),
		Active:         toNullable(r.Active),
		Permissions:    toNullable(r.Permissions),
	}
}

func (r UpdateAdminRequest) ToPort() adminsource.UpdateAdminRequest {
	return adminsource.UpdateAdminRequest{
		Email:          mapOptional(fromNullable(r.Email), fromEmail),
		Password:       fromNullable(r.Password),
		FirstName:      fromNullable(r.FirstName),
		LastName:       fromNullable(r.LastName),
		Phone:          fromNullable(r.Phone),
		ProfilePicture: fromNullable(r.ProfilePicture),
		Department:     fromNullable(r.Department),
		AdminLevel:     fromNullable(r.AdminLevel),
		Active:         fromNullable(r.Active),
		Permissions:    fromNullable(r.Permissions),
	}
}

// Board members

// BoardMemberFromDomain never copies the password onto the wire. A stored join
// date that is not YYYY-MM-DD is an error rather than a zero date.
func BoardMemberFromDomain(b domain.BoardMember) (BoardMember, error) {
	d, err := ParseDate(b.JoinDate)
	if err != nil {
		return BoardMember{}, fmt.Errorf("board member %d join date: %w", b.ID, err)
	}
	return BoardMember{
		Id:        int64(b.ID),
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Position:  b.Position,
		JoinDate:  d,
		Season:    b.Season,
		ClubId:    int64(b.ClubID),
		IsActive:  b.IsActive,
	}, nil
}

func (b BoardMember) ToDomain() domain.BoardMember {
	return domain.BoardMember{
		ID:        domain.BoardMemberID(b.Id),
		Email:     b.Email,
		Password:  b.Password,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Position:  b.Position,
		JoinDate:  FormatDate(b.JoinDate),
		Season:    b.Season,
		ClubID:    domain.ClubID(b.ClubId),
		IsActive:  b.IsActive,
	}
}

func CreateBoardMemberRequestFromPort(r boardmembersource.CreateBoardMemberRequest) (CreateBoardMemberRequest, error) {
	d, err := ParseDate(r.JoinDate)
	if err != nil {
		return CreateBoardMemberRequest{}, err
	}
	return CreateBoardMemberRequest{
		Email:     openapi_types.Email(r.Email),
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Position:  r.Position,
		JoinDate:  d,
		Season:    r.Season,
		Club:      ClubRef{Id: int64(r.ClubID)},
	}, nil
}

func (r CreateBoardMemberRequest) ToPort() boardmembersource.CreateBoardMemberRequest {
	return boardmembersource.CreateBoardMemberRequest{
		Email:     string(r.Email),
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Position:  r.Position,
		JoinDate:  FormatDate(r.JoinDate),
		Season:    r.Season,
		ClubID:    domain.ClubID(r.Club.Id),
	}
}

func UpdateBoardMemberRequestFromPort(r boardmembersource.UpdateBoardMemberRequest) (UpdateBoardMemberRequest, error) {
	out := UpdateBoardMemberRequest{
		Email:     toNullable(mapOptional(r.Email, toEmail)),
		Password:  toNullable(r.Password),
		FirstName: toNullable(r.FirstName),
		LastName:  toNullable(r.LastName),
		Position:  toNullable(r.Position),
		Season:    toNullable(r.Season),
		Club:      toNullable(mapOptional(r.ClubID, func(id domain.ClubID) ClubRef { return ClubRef{Id: int64(id)} })),
		IsActive:  toNullable(r.IsActive),
	}
	switch {
	case r.JoinDate.HasValue():
		d, err := ParseDate(r.JoinDate.Value())
		if err != nil {
			return UpdateBoardMemberRequest{}, err
		}
		out.JoinDate = nullable.NewNullableWithValue(d)
	case r.JoinDate.IsNull():
		out.JoinDate = nullable.NewNullNullable[openapi_types.Date]()
	}
	return out, nil
}

func (r UpdateBoardMemberRequest) ToPort() boardmembersource.UpdateBoardMemberRequest {
	return boardmembersource.UpdateBoardMemberRequest{
		Email:     mapOptional(fromNullable(r.Email), fromEmail),
		Password:  fromNullable(r.Password),
		FirstName: fromNullable(r.FirstName),
		LastName:  fromNullable(r.LastName),
		Position:  fromNullable(r.Position),
		JoinDate:  mapOptional(fromNullable(r.JoinDate), FormatDate),
		Season:    fromNullable(r.Season),
		ClubID:    mapOptional(fromNullable(r.Club), func(c ClubRef) domain.ClubID { return domain.ClubID(c.Id) }),
		IsActive:  fromNullable(r.IsActive),
	}
}

// Committees

func CommitteeFromDomain(c domain.Committee) Committee {
	out := Committee{
		Id:          int64(c.ID),
		Name:        c.Name,
		Description: c.Description,
		ClubId:      int64(c.ClubID),
	}
	if c.HeadID != 0 {
		h := int64(c.HeadID)
		out.HeadId = &h
	}
	return out
}

func (c Committee) ToDomain() domain.Committee {
	out := domain.Committee{
		ID:          domain.CommitteeID(c.Id),
		Name:        c.Name,
		Description: c.Description,
		ClubID:      domain.ClubID(c.ClubId),
	}
	if c.HeadId != nil {
		out.HeadID = domain.BoardMemberID(*c.HeadId)
	}
	return out
}

func CreateCommitteeRequestFromPort(r committeesource.CreateCommitteeRequest) CreateCommitteeRequest {
	out := CreateCommitteeRequest{
		Name:        r.Name,
		Description: r.Description,
		Club:        ClubRef{Id: int64(r.ClubID)},
	}
	if r.HeadID != 0 {
		h := int64(r.HeadID)
		out.HeadId = &h
	}
	return out
}

func (r CreateCommitteeRequest) ToPort() committeesource.CreateCommitteeRequest {
	out := committeesource.CreateCommitteeRequest{
		Name:        r.Name,
		Description: r.Description,
		ClubID:      domain.ClubID(r.Club.Id),
	}
	if r.HeadId != nil {
		out.HeadID = domain.BoardMemberID(*r.HeadId)
	}
	return out
}

func UpdateCommitteeRequestFromPort(r committeesource.UpdateCommitteeRequest) UpdateCommitteeRequest {
	return UpdateCommitteeRequest{
		Name:        toNullable(r.Name),
		Description: toNullable(r.Description),
		Club:        toNullable(mapOptional(r.ClubID, func(id domain.ClubID) ClubRef { return ClubRef{Id: int64(id)} })),
		HeadId:      toNullable(mapOptional(r.HeadID, func(id domain.BoardMemberID) int64 { return int64(id) })),
	}
}

func (r UpdateCommitteeRequest) ToPort() committeesource.UpdateCommitteeRequest {
	return committeesource.UpdateCommitteeRequest{
		Name:        fromNullable(r.Name),
		Description: fromNullable(r.Description),
		ClubID:      mapOptional(fromNullable(r.Club), func(c ClubRef) domain.ClubID { return domain.ClubID(c.Id) }),
		HeadID:      mapOptional(fromNullable(r.HeadId), func(id int64) domain.BoardMemberID { return domain.BoardMemberID(id) }),
	}
}

// Helpers

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (openapi_types.Date, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return openapi_types.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return openapi_types.Date{Time: t}, nil
}

// FormatDate renders d as YYYY-MM-DD, or "" for the zero date.
func FormatDate(d openapi_types.Date) string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(domain.DateLayout)
}

func toEmail(s string) openapi_types.Email   { return openapi_types.Email(s) }
func fromEmail(e openapi_types.Email) string { return string(e) }

func toNullable[T any](o domain.Optional[T]) nullable.Nullable[T] {
	switch {
	case !o.IsSpecified():
		return nil
	case o.IsNull():
		return nullable.NewNullNullable[T]()
	default:
		return nullable.NewNullableWithValue(o.Value())
	}
}

func fromNullable[T any](n nullable.Nullable[T]) domain.Optional[T] {
	if !n.IsSpecified() {
		return domain.Unspecified[T]()
	}
	if n.IsNull() {
		return domain.Null[T]()
	}
	v, err := n.Get()
	if err != nil {
		return domain.Null[T]()
	}
	return domain.Some(v)
}

func mapOptional[A, B any](o domain.Optional[A], f func(A) B) domain.Optional[B] {
	switch {
	case !o.IsSpecified():
		return domain.Unspecified[B]()
	case o.IsNull():
		return domain.Null[B]()
	default:
		return domain.Some(f(o.Value()))
	}
}
