package itest

import (
	"net/http"
	"strconv"
	"testing"
)

type club struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	President   string `json:"president"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type clubPage struct {
	Content       []club `json:"content"`
	TotalElements int    `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	CurrentPage   int    `json:"currentPage"`
}

type membership struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	ClubID   int64  `json:"clubId"`
	JoinedAt string `json:"joinedAt"`
}

func clubPath(id int64) string {
	return "/clubs/" + strconv.FormatInt(id, 10)
}

func TestClubs_CRUDAndQueries(t *testing.T) {
	for _, b := range backendsFromEnv(t) {
		t.Run(string(b), func(t *testing.T) {
			s := newTestServer(t, b)
			const sub = "admin|1"

			bodies := []map[string]any{
				{"name": "  Chess   Club ", "description": "Weekly tournaments", "president": "Omar Nabil", "email": "chess@nu.edu.eg", "category": "Academic"},
				{"name": "Drama Club", "president": "Laila Samir", "email": "drama@nu.edu.eg", "category": "Arts"},
				{"name": "Robotics Society", "president": "Karim Fathy", "email": "robotics@nu.edu.eg", "category": "Academic"},
			}
			ids := make([]int64, 0, len(bodies))
			for _, body := range bodies {
				status, raw, _ := s.doJSON(t, http.MethodPost, "/clubs", sub, body)
				if status != http.StatusCreated {
					t.Fatalf("create status=%d body=%s", status, raw)
				}
				c := mustUnmarshal[club](t, raw)
				if c.CreatedAt != "2025-03-01T09:00:00.000Z" || c.UpdatedAt != c.CreatedAt {
					t.Fatalf("unexpected timestamps: %+v", c)
				}
				ids = append(ids, c.ID)
			}

			status, raw, _ := s.doJSON(t, http.MethodGet, clubPath(ids[0]), sub, nil)
			if status != http.StatusOK {
				t.Fatalf("get status=%d body=%s", status, raw)
			}
			if got := mustUnmarshal[club](t, raw); got.Name != "Chess Club" {
				t.Fatalf("expected normalized name, got %q", got.Name)
			}

			status, raw, _ = s.doJSON(t, http.MethodGet, "/clubs?page=1&size=2", sub, nil)
			if status != http.StatusOK {
				t.Fatalf("list status=%d body=%s", status, raw)
			}
			page := mustUnmarshal[clubPage](t, raw)
			if page.TotalElements != 3 || page.TotalPages != 2 || page.CurrentPage != 1 || len(page.Content) != 1 || page.Content[0].ID != ids[2] {
				t.Fatalf("unexpected page: %+v", page)
			}

			status, raw, _ = s.doJSON(t, http.MethodGet, "/clubs/search?name=club", sub, nil)
			if status != http.StatusOK {
				t.Fatalf("search status=%d body=%s", status, raw)
			}
			if found := mustUnmarshal[[]club](t, raw); len(found) != 2 {
				t.Fatalf("expected 2 matches, got %d", len(found))
			}

			status, raw, _ = s.doJSON(t, http.MethodGet, "/clubs/category?category=Academic", sub, nil)
			if status != http.StatusOK {
				t.Fatalf("category status=%d body=%s", status, raw)
			}
			if found := mustUnmarshal[[]club](t, raw); len(found) != 2 || found[0].ID != ids[0] || found[1].ID != ids[2] {
				t.Fatalf("unexpected category result: %+v", found)
			}

			update := map[string]any{"name": "Chess & Strategy Club", "president": "Omar Nabil", "email": "chess@nu.edu.eg", "category": "Academic"}
			status, raw, _ = s.doJSON(t, http.MethodPut, clubPath(ids[0]), sub, update)
			if status != http.StatusOK {
				t.Fatalf("update status=%d body=%s", status, raw)
			}
			if got := mustUnmarshal[club](t, raw); got.Name != "Chess & Strategy Club" || got.Description != "" {
				t.Fatalf("unexpected updated club: %+v", got)
			}

			status, raw, _ = s.doJSON(t, http.MethodDelete, clubPath(ids[1]), sub, nil)
			if status != http.StatusNoContent {
				t.Fatalf("delete status=%d body=%s", status, raw)
			}
			status, raw, _ = s.doJSON(t, http.MethodGet, clubPath(ids[1]), sub, nil)
			requireErrorCode(t, status, raw, http.StatusNotFound, "NOT_FOUND")
		})
	}
}

func TestClubs_ValidationAndAuth(t *testing.T) {
	for _, b := range backendsFromEnv(t) {
		t.Run(string(b), func(t *testing.T) {
			s := newTestServer(t, b)

			status, raw, _ := s.doJSON(t, http.MethodGet, "/clubs", "", nil)
			requireErrorCode(t, status, raw, http.StatusUnauthorized, "UNAUTHORIZED")

			status, raw, _ = s.doJSON(t, http.MethodPost, "/clubs", "admin|1", map[string]any{"name": "", "email": "not-an-email"})
			requireErrorCode(t, status, raw, http.StatusUnprocessableEntity, "VALIDATION_ERROR")

			status, raw, _ = s.doJSON(t, http.MethodGet, "/clubs?page=-1", "admin|1", nil)
			requireErrorCode(t, status, raw, http.StatusUnprocessableEntity, "VALIDATION_ERROR")

			status, raw, _ = s.doJSON(t, http.MethodGet, "/clubs/0", "admin|1", nil)
			requireErrorCode(t, status, raw, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
		})
	}
}

func TestClubs_IdempotentCreate(t *testing.T) {
	for _, b := range backendsFromEnv(t) {
		t.Run(string(b), func(t *testing.T) {
			s := newTestServer(t, b)
			body := map[string]any{"name": "Film Society", "president": "Nour Adel", "email": "film@nu.edu.eg", "category": "Arts"}
			headers := map[string]string{"Idempotency-Key": "create-film-1"}

			status, first, _ := s.doJSONWithHeaders(t, http.MethodPost, "/clubs", "admin|1", body, headers)
			if status != http.StatusCreated {
				t.Fatalf("first create status=%d body=%s", status, first)
			}
			status, second, h := s.doJSONWithHeaders(t, http.MethodPost, "/clubs", "admin|1", body, headers)
			if status != http.StatusCreated {
				t.Fatalf("replay status=%d body=%s", status, second)
			}
			requireHeaderPresent(t, h, "Idempotent-Replayed")
			if mustUnmarshal[club](t, first).ID != mustUnmarshal[club](t, second).ID {
				t.Fatalf("replay created a new club: %s vs %s", first, second)
			}

			body["category"] = "Media"
			status, raw, _ := s.doJSONWithHeaders(t, http.MethodPost, "/clubs", "admin|1", body, headers)
			requireErrorCode(t, status, raw, http.StatusConflict, "IDEMPOTENCY_KEY_REUSE")

			status, raw, _ = s.doJSON(t, http.MethodGet, "/clubs", "admin|1", nil)
			if status != http.StatusOK {
				t.Fatalf("list status=%d body=%s", status, raw)
			}
			if page := mustUnmarshal[clubPage](t, raw); page.TotalElements != 1 {
				t.Fatalf("expected exactly one club, got %+v", page)
			}
		})
	}
}

func TestApplications_CreateListDelete(t *testing.T) {
	for _, b := range backendsFromEnv(t) {
		t.Run(string(b), func(t *testing.T) {
			s := newTestServer(t, b)

			status, raw, _ := s.doJSON(t, http.MethodPost, "/applications", "user|1", map[string]any{"userId": 1, "clubId": 3})
			if status != http.StatusCreated {
				t.Fatalf("create status=%d body=%s", status, raw)
			}
			m := mustUnmarshal[membership](t, raw)
			if m.UserID != 1 || m.ClubID != 3 || m.JoinedAt == "" {
				t.Fatalf("unexpected membership: %+v", m)
			}

			status, raw, _ = s.doJSON(t, http.MethodPost, "/applications", "user|1", map[string]any{"userId": 0, "clubId": 3})
			requireErrorCode(t, status, raw, http.StatusUnprocessableEntity, "VALIDATION_ERROR")

			status, raw, _ = s.doJSON(t, http.MethodGet, "/applications", "user|1", nil)
			if status != http.StatusOK {
				t.Fatalf("list status=%d body=%s", status, raw)
			}
			if list := mustUnmarshal[[]membership](t, raw); len(list) != 1 {
				t.Fatalf("expected 1 application, got %d", len(list))
			}

			path := "/applications/" + strconv.FormatInt(m.ID, 10)
			status, raw, _ = s.doJSON(t, http.MethodDelete, path, "user|1", nil)
			if status != http.StatusNoContent {
				t.Fatalf("delete status=%d body=%s", status, raw)
			}
			status, raw, _ = s.doJSON(t, http.MethodDelete, path, "user|1", nil)
			requireErrorCode(t, status, raw, http.StatusNotFound, "NOT_FOUND")
		})
	}
}

func TestBoardMembersAndCommittees(t *testing.T) {
	for _, b := range backendsFromEnv(t) {
		t.Run(string(b), func(t *testing.T) {
			s := newTestServer(t, b)
			const sub = "admin|1"

			status, raw, _ := s.doJSON(t, http.MethodPost, "/board-members", sub, map[string]any{
				"email":     "Hana@NU.edu.eg",
				"password":  "board-pass-1",
				"firstName": "Hana",
				"lastName":  "Mostafa",
				"position":  "President",
				"joinDate":  "2024-09-01",
				"season":    "2024",
				"club":      map[string]any{"id": 1},
			})
			if status != http.StatusCreated {
				t.Fatalf("create board member status=%d body=%s", status, raw)
			}
			bm := mustUnmarshal[struct {
				ID       int64  `json:"id"`
				Email    string `json:"email"`
				Password string `json:"password"`
				JoinDate string `json:"joinDate"`
			}](t, raw)
			if bm.Email != "hana@nu.edu.eg" || bm.Password != "" || bm.JoinDate != "2024-09-01" {
				t.Fatalf("unexpected board member: %+v", bm)
			}

			status, raw, _ = s.doJSON(t, http.MethodPost, "/committees", sub, map[string]any{
				"name":        "Events",
				"description": "Plans events",
				"club":        map[string]any{"id": 1},
				"headId":      bm.ID,
			})
			if status != http.StatusCreated {
				t.Fatalf("create committee status=%d body=%s", status, raw)
			}
			cm := mustUnmarshal[struct {
				ID     int64  `json:"id"`
				HeadID *int64 `json:"headId"`
			}](t, raw)
			if cm.HeadID == nil || *cm.HeadID != bm.ID {
				t.Fatalf("unexpected committee head: %+v", cm)
			}

			path := "/committees/" + strconv.FormatInt(cm.ID, 10)
			status, raw, _ = s.doJSON(t, http.MethodPut, path, sub, map[string]any{"headId": nil})
			if status != http.StatusOK {
				t.Fatalf("clear head status=%d body=%s", status, raw)
			}
			cleared := mustUnmarshal[struct {
				HeadID *int64 `json:"headId"`
			}](t, raw)
			if cleared.HeadID != nil {
				t.Fatalf("expected head cleared, got %d", *cleared.HeadID)
			}
		})
	}
}
