package http

import (
	"net/http"
)

func (h Handler) PostRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	if _, err := h.ledger.Register(r.Context(), req.ToDomain()); err != nil {
		h.writeError(w, r, err, "Failed to register user")
		return
	}

	writeText(w, http.StatusCreated, "user registered successfully")
}

func (h Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.ledger.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err, "Failed to authenticate user")
		return
	}

	token, err := h.tokens.Issue(account.ID)
	if err != nil {
		h.writeError(w, r, err, "Failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{AccessToken: token, TokenType: "Bearer"})
}

func (h Handler) PostFriend(w http.ResponseWriter, r *http.Request) {
	email, ok := h.currentEmail(w, r)
	if !ok {
		return
	}

	friendEmail := r.URL.Query().Get("friend_email")
	if err := h.validate.Var(friendEmail, "required,email"); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"friend_email": "friend_email is mandatory and must be a valid email address",
		})
		return
	}

	if err := h.ledger.AddFriend(r.Context(), email, friendEmail); err != nil {
		h.writeError(w, r, err, "Failed to add friend")
		return
	}

	writeText(w, http.StatusOK, "User added")
}

func (h Handler) GetFriends(w http.ResponseWriter, r *http.Request) {
	email, ok := h.currentEmail(w, r)
	if !ok {
		return
	}

	friends, err := h.ledger.ListFriends(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err, "Failed to list friends")
		return
	}

	writeJSON(w, http.StatusOK, toFriendResponses(friends))
}

func (h Handler) PatchProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := h.currentEmail(w, r)
	if !ok {
		return
	}

	var req ProfileUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.ledger.UpdateProfile(r.Context(), email, req.ToDomain()); err != nil {
		h.writeError(w, r, err, "Failed to update profile")
		return
	}

	writeText(w, http.StatusOK, "User information updated successfully")
}
