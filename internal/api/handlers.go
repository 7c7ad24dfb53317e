package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/mehak1404/splitwise/internal/auth"
	"github.com/mehak1404/splitwise/internal/ledger"
	"github.com/mehak1404/splitwise/internal/models"
)

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type splitResponse struct {
	UserID  string `json:"user_id"`
	Amount  string `json:"amount"`
	Percent string `json:"percent,omitempty"`
}

type expenseResponse struct {
	ID      string          `json:"id"`
	Kind    string          `json:"kind"`
	Amount  string          `json:"amount"`
	PayerID string          `json:"payer_id"`
	Splits  []splitResponse `json:"splits"`
}

type balanceResponse struct {
	OwerID    string `json:"ower_id"`
	OwedToID  string `json:"owed_to_id"`
	Amount    string `json:"amount"`
	Statement string `json:"statement"`
}

type balancesResponse struct {
	Balances []balanceResponse `json:"balances"`
	Message  string            `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func toUserResponse(user models.User) userResponse {
	return userResponse{ID: user.ID, Name: user.Name, Email: user.Email, Phone: user.Phone}
}

func (a *API) toExpenseResponse(e *models.Expense) expenseResponse {
	splits := make([]splitResponse, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = splitResponse{UserID: s.UserID, Amount: s.Amount.StringFixed(2)}
		if e.Kind == models.SplitPercent {
			splits[i].Percent = s.Percent.String()
		}
	}
	return expenseResponse{
		ID:      e.ID,
		Kind:    string(e.Kind),
		Amount:  e.Amount.StringFixed(2),
		PayerID: e.PayerID,
		Splits:  splits,
	}
}

func (a *API) toBalancesResponse(entries []ledger.Entry) balancesResponse {
	resp := balancesResponse{Balances: make([]balanceResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Balances = append(resp.Balances, balanceResponse{
			OwerID:    e.OwerID,
			OwedToID:  e.OwedToID,
			Amount:    e.Amount.StringFixed(2),
			Statement: a.expenses.Describe(e),
		})
	}
	if len(resp.Balances) == 0 {
		resp.Message = "No balances"
	}
	return resp
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "email and name are required")
		return
	}

	user, token, err := a.auth.Register(r.Context(), req.Email, req.Name, req.Password)
	switch {
	case errors.Is(err, auth.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, auth.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"user":  toUserResponse(*user),
		"token": token,
	})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  toUserResponse(*user),
		"token": token,
	})
}

func (a *API) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	user, err := a.expenses.AddUser(r.Context(), models.User{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to add user")
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users := a.expenses.Users()
	resp := make([]userResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleRecordExpense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind    string          `json:"kind"`
		Amount  decimal.Decimal `json:"amount"`
		PayerID string          `json:"payer_id"`
		Splits  []struct {
			UserID  string           `json:"user_id"`
			Amount  *decimal.Decimal `json:"amount,omitempty"`
			Percent *decimal.Decimal `json:"percent,omitempty"`
		} `json:"splits"`
		Metadata *struct {
			Name     string `json:"name"`
			ImageURL string `json:"image_url"`
			Notes    string `json:"notes"`
		} `json:"metadata,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inputs := make([]models.SplitInput, len(req.Splits))
	for i, s := range req.Splits {
		inputs[i] = models.SplitInput{UserID: s.UserID, Amount: s.Amount, Percent: s.Percent}
	}

	var meta *models.ExpenseMetadata
	if req.Metadata != nil {
		meta = &models.ExpenseMetadata{
			Name:     req.Metadata.Name,
			ImageURL: req.Metadata.ImageURL,
			Notes:    req.Metadata.Notes,
		}
	}

	expense, err := a.expenses.RecordExpense(r.Context(), models.SplitKind(req.Kind), req.Amount, req.PayerID, inputs, meta)
	if err != nil {
		if errors.Is(err, ledger.ErrUnknownUser) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":  "invalid expense",
			"reason": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, a.toExpenseResponse(expense))
}

func (a *API) handleUserBalances(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	entries, err := a.expenses.UserBalances(userID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, a.toBalancesResponse(entries))
}

func (a *API) handleAllBalances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.toBalancesResponse(a.expenses.AllBalances()))
}
