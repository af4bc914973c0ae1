package oas

import (
	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code      string                             `json:"code"`
	Message   string                             `json:"message"`
	Details   nullable.Nullable[map[string]any] `json:"details,omitempty"`
	RequestId nullable.Nullable[string]          `json:"requestId,omitempty"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Club struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	President   string `json:"president"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type ClubRequest struct {
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	President   string              `json:"president"`
	Email       openapi_types.Email `json:"email"`
	Category    string              `json:"category"`
}

// ClubPage is the paginated envelope returned by GET /clubs.
type ClubPage struct {
	Content       []Club `json:"content"`
	TotalElements int    `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	CurrentPage   int    `json:"currentPage"`
}

type Membership struct {
	Id       int64  `json:"id"`
	UserId   int64  `json:"userId"`
	ClubId   int64  `json:"clubId"`
	JoinedAt string `json:"joinedAt"`
}

type MembershipRequest struct {
	UserId int64 `json:"userId"`
	ClubId int64 `json:"clubId"`
}

type Admin struct {
	Id                    int64    `json:"id"`
	Email                 string   `json:"email"`
	Password              string   `json:"password,omitempty"`
	FirstName             string   `json:"firstName"`
	LastName              string   `json:"lastName"`
	Phone                 *string  `json:"phone,omitempty"`
	ProfilePicture        *string  `json:"profilePicture,omitempty"`
	Active                bool     `json:"active"`
	Department            *string  `json:"department,omitempty"`
	AdminLevel            *string  `json:"adminLevel,omitempty"`
	CanManageAdmins       bool     `json:"canManageAdmins"`
	CanManageApplications bool     `json:"canManageApplications"`
	CanManageClubs        bool     `json:"canManageClubs"`
	Roles                 []string `json:"roles"`
	CreatedAt             int64    `json:"createdAt"`
	UpdatedAt             int64    `json:"updatedAt"`
}

type CreateAdminRequest struct {
	Email       openapi_types.Email `json:"email"`
	Password    string              `json:"password"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	Department  *string             `json:"department,omitempty"`
	AdminLevel  *string             `json:"adminLevel,omitempty"`
	Permissions []string            `json:"permissions,omitempty"`
}

// UpdateAdminRequest is a partial update: omitted fields are unchanged, null clears optional fields.
type UpdateAdminRequest struct {
	Email          nullable.Nullable[openapi_types.Email] `json:"email,omitempty"`
	Password       nullable.Nullable[string]              `json:"password,omitempty"`
	FirstName      nullable.Nullable[string]              `json:"firstName,omitempty"`
	LastName       nullable.Nullable[string]              `json:"lastName,omitempty"`
	Phone          nullable.Nullable[string]              `json:"phone,omitempty"`
	ProfilePicture nullable.Nullable[string]              `json:"profilePicture,omitempty"`
	Department     nullable.Nullable[string]              `json:"department,omitempty"`
	AdminLevel     nullable.Nullable[string]              `json:"adminLevel,omitempty"`
	Active         nullable.Nullable[bool]                `json:"active,omitempty"`
	Permissions    nullable.Nullable[[]string]            `json:"permissions,omitempty"`
}

// ClubRef references a club by id inside board member and committee requests.
type ClubRef struct {
	Id int64 `json:"id"`
}

type BoardMember struct {
	Id        int64              `json:"id"`
	Email     string             `json:"email"`
	Password  string             `json:"password,omitempty"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Position  string             `json:"position"`
	JoinDate  openapi_types.Date `json:"joinDate"`
	Season    string             `json:"season,omitempty"`
	ClubId    int64              `json:"clubId"`
	IsActive  bool               `json:"isActive"`
}

type CreateBoardMemberRequest struct {
	Email     openapi_types.Email `json:"email"`
	Password  string              `json:"password"`
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Position  string              `json:"position"`
	JoinDate  openapi_types.Date  `json:"joinDate"`
	Season    string              `json:"season,omitempty"`
	Club      ClubRef             `json:"club"`
}

type UpdateBoardMemberRequest struct {
	Email     nullable.Nullable[openapi_types.Email] `json:"email,omitempty"`
	Password  nullable.Nullable[string]              `json:"password,omitempty"`
	FirstName nullable.Nullable[string]              `json:"firstName,omitempty"`
	LastName  nullable.Nullable[string]              `json:"lastName,omitempty"`
	Position  nullable.Nullable[string]              `json:"position,omitempty"`
	JoinDate  nullable.Nullable[openapi_types.Date]  `json:"joinDate,omitempty"`
	Season    nullable.Nullable[string]              `json:"season,omitempty"`
	Club      nullable.Nullable[ClubRef]             `json:"club,omitempty"`
	IsActive  nullable.Nullable[bool]                `json:"isActive,omitempty"`
}

type Committee struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ClubId      int64  `json:"clubId"`
	HeadId      *int64 `json:"headId,omitempty"`
}

type CreateCommitteeRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Club        ClubRef `json:"club"`
	HeadId      *int64  `json:"headId,omitempty"`
}

type UpdateCommitteeRequest struct {
	Name        nullable.Nullable[string]  `json:"name,omitempty"`
	Description nullable.Nullable[string]  `json:"description,omitempty"`
	Club        nullable.Nullable[ClubRef] `json:"club,omitempty"`
	HeadId      nullable.Nullable[int64]   `json:"headId,omitempty"`
}
