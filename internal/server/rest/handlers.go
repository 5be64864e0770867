package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
	"github.com/dmitrijs2005/recipekeeper/internal/server/services"
)

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

func decode(r *http.Request, v any) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return fmt.Errorf("%w: request body is not valid JSON", common.ErrMissingField)
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) signUp(w http.ResponseWriter, r *http.Request) {
	var req services.SignUpRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	account, err := s.accounts.SignUp(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "account created", "email", account.Email)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, account)
}

func (s *Server) createToken(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	token, err := s.accounts.Login(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	render.JSON(w, r, TokenResponse{Token: token})
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	account, err := s.accounts.GetProfile(r.Context(), tokenFromRequest(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, account)
}

// updateProfile serves both PUT and PATCH; any subset of fields may be sent.
// An empty body is an empty update.
func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	token := tokenFromRequest(r)

	var upd models.ProfileUpdate
	if err := render.DecodeJSON(r.Body, &upd); err != nil && !errors.Is(err, io.EOF) {
		// Authentication is reported ahead of a malformed body.
		if _, authErr := s.accounts.GetProfile(r.Context(), token); authErr != nil {
			s.fail(w, r, authErr)
			return
		}
		s.fail(w, r, fmt.Errorf("%w: request body is not valid JSON", common.ErrMissingField))
		return
	}

	account, err := s.accounts.UpdateProfile(r.Context(), token, upd)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, account)
}
