package responses

type AccessToken struct {
	AccessToken string `json:"accessToken"`
}
