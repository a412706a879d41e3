package handlers

import (
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"
	"github.com/karavella/fabric-catalog/app/helpers"
	"github.com/karavella/fabric-catalog/app/repositories"
	"github.com/karavella/fabric-catalog/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render   *render.Render
	userRepo repositories.UserRepositoryImpl
	sessions sessions.SessionStore
}

func NewAuthHandler(render *render.Render, userRepo repositories.UserRepositoryImpl, store sessions.SessionStore) *AuthHandler {
	return &AuthHandler{render: render, userRepo: userRepo, sessions: store}
}

type LoginPageData struct {
	Title         string
	Message       string
	MessageStatus string
	Email         string
	CSRFField     template.HTML
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := &LoginPageData{
		Title:         "Staff Login",
		Message:       r.URL.Query().Get("message"),
		MessageStatus: r.URL.Query().Get("status"),
		CSRFField:     csrf.TemplateField(r),
	}
	h.render.HTML(w, http.StatusOK, "auth/login", data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPost: form parsing error: %v", err)
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("LoginPost: failed to look up user %s: %v", email, err)
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Something went wrong. Please try again."), http.StatusSeeOther)
		return
	}
	if user == nil || !helpers.PasswordCompare(user.PasswordHash, []byte(password)) {
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Invalid email or password."), http.StatusSeeOther)
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		log.Printf("LoginPost: failed to save session for user %d: %v", user.ID, err)
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Failed to start a session."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/fabrics", http.StatusSeeOther)
}

func (h *AuthHandler) LogoutPost(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearUserID(w, r); err != nil {
		log.Printf("LogoutPost: failed to clear session: %v", err)
	}
	http.Redirect(w, r, "/admin/login?status=success&message="+url.QueryEscape("You have been logged out."), http.StatusSeeOther)
}
