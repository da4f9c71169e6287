package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/fitcoach/internal/netx"
	"github.com/dmitrijs2005/fitcoach/internal/server/users"
)

const maxBodyBytes = 1 << 16

// createdAtLayout matches what the reference backend emits: naive UTC with
// microseconds.
const createdAtLayout = "2006-01-02T15:04:05.000000"

type credentialsRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	Username     string   `json:"username"`
	Age          *int     `json:"age"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	Goal         *string  `json:"goal"`
	FitnessLevel *string  `json:"fitness_level"`
	CreatedAt    *string  `json:"created_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *HTTPServer) root(w http.ResponseWriter, r *http.Request) {
	netx.WriteJSON(w, http.StatusOK, map[string]string{"message": "AI Fitness Coach API", "status": "running"})
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	netx.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	username, password, ok := readCredentials(w, r)
	if !ok {
		return
	}

	token, err := s.users.Register(r.Context(), username, []byte(password))
	switch {
	case err == nil:
	case errors.Is(err, users.ErrUserExists):
		writeDetail(w, http.StatusBadRequest, "Username already registered")
		return
	case errors.Is(err, users.ErrInvalidInput):
		writeValidation(w, validationError{Loc: []any{"body"}, Msg: err.Error(), Type: "value_error"})
		return
	default:
		s.logger.Error(r.Context(), "signup failed", "err", err)
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", username)
	netx.WriteJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := readCredentials(w, r)
	if !ok {
		return
	}

	token, err := s.users.Login(r.Context(), username, []byte(password))
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			writeUnauthorized(w, "Incorrect username or password")
			return
		}
		s.logger.Error(r.Context(), "login failed", "err", err)
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	netx.WriteJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *HTTPServer) getProfile(w http.ResponseWriter, r *http.Request) {
	netx.WriteJSON(w, http.StatusOK, toProfileResponse(userFromContext(r.Context())))
}

func (s *HTTPServer) updateProfile(w http.ResponseWriter, r *http.Request) {
	upd, verrs := parseProfileQuery(r)
	if len(verrs) > 0 {
		writeValidation(w, verrs...)
		return
	}

	user := userFromContext(r.Context())
	if _, err := s.users.UpdateProfile(r.Context(), user.Username, upd); err != nil {
		if errors.Is(err, users.ErrUnauthorized) {
			writeUnauthorized(w, "Could not validate credentials")
			return
		}
		s.logger.Error(r.Context(), "profile update failed", "err", err)
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	netx.WriteJSON(w, http.StatusOK, messageResponse{Message: "Profile updated successfully"})
}

func toProfileResponse(u *users.User) profileResponse {
	resp := profileResponse{
		Username:     u.Username,
		Age:          u.Age,
		Height:       u.Height,
		Weight:       u.Weight,
		Goal:         u.Goal,
		FitnessLevel: u.FitnessLevel,
	}
	if !u.CreatedAt.IsZero() {
		ts := u.CreatedAt.UTC().Format(createdAtLayout)
		resp.CreatedAt = &ts
	}
	return resp
}

// readCredentials decodes the signup/login body. On failure it writes the
// validation response itself and reports false.
func readCredentials(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	var req credentialsRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeValidation(w, validationError{Loc: []any{"body"}, Msg: "JSON decode error", Type: "json_invalid"})
		return "", "", false
	}

	var verrs []validationError
	if req.Username == nil {
		verrs = append(verrs, missingField("body", "username"))
	}
	if req.Password == nil {
		verrs = append(verrs, missingField("body", "password"))
	}
	if len(verrs) > 0 {
		writeValidation(w, verrs...)
		return "", "", false
	}
	return *req.Username, *req.Password, true
}

func parseProfileQuery(r *http.Request) (users.ProfileUpdate, []validationError) {
	q := r.URL.Query()
	var (
		upd   users.ProfileUpdate
		verrs []validationError
	)

	if v := q.Get("age"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			verrs = append(verrs, validationError{Loc: []any{"query", "age"}, Msg: "Input should be a valid integer", Type: "int_parsing"})
		} else {
			upd.Age = &n
		}
	}
	for _, f := range []struct {
		name string
		dst  **float64
	}{{"height", &upd.Height}, {"weight", &upd.Weight}} {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			verrs = append(verrs, validationError{Loc: []any{"query", f.name}, Msg: "Input should be a valid number", Type: "float_parsing"})
			continue
		}
		*f.dst = &x
	}
	if v := strings.TrimSpace(q.Get("goal")); v != "" {
		upd.Goal = &v
	}
	if v := strings.TrimSpace(q.Get("fitness_level")); v != "" {
		upd.FitnessLevel = &v
	}
	return upd, verrs
}

// ---- error bodies ----

type detailResponse struct {
	Detail string `json:"detail"`
}

type validationError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

type validationResponse struct {
	Detail []validationError `json:"detail"`
}

func missingField(where, name string) validationError {
	return validationError{Loc: []any{where, name}, Msg: "Field required", Type: "missing"}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	netx.WriteJSON(w, status, detailResponse{Detail: detail})
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, detail)
}

func writeValidation(w http.ResponseWriter, errs ...validationError) {
	netx.WriteJSON(w, http.StatusUnprocessableEntity, validationResponse{Detail: errs})
}

