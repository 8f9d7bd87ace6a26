package response

type CSRF struct {
	CSRFToken string `json:"csrfToken"`
}

type Login struct {
	Token string `json:"token"`
}
