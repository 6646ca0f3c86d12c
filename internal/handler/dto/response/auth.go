package response

type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse keeps the wire shape clients already parse: auth + token (+ user_id on success).
type LoginResponse struct {
	Auth   bool    `json:"auth"`
	Token  *string `json:"token"`
	UserID int64   `json:"user_id,omitempty"`
}

func LoginSucceeded(userID int64, token string) LoginResponse {
	return LoginResponse{Auth: true, Token: &token, UserID: userID}
}

func LoginRejected() LoginResponse {
	return LoginResponse{Auth: false, Token: nil}
}
