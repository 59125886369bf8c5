package response_models

type AuthToken struct {
	Token string `json:"token"`
}
