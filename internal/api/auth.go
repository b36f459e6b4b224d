package api

import "context"

// LoginResult is the payload of a successful /auth/login call.
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	User         User   `json:"user"`
}

// RegisterRequest creates a new platform account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

// RegisterResult is the payload of a successful /auth/register call.
type RegisterResult struct {
	User  User   `json:"user"`
	Token string `json:"token,omitempty"`
}

// Login exchanges credentials for a token pair. It does not store the
// token on the client; callers decide what to do with it.
func (c *Client) Login(ctx context.Context, email, password string) (*Response[LoginResult], error) {
	body := map[string]string{"email": email, "password": password}
	var res Response[LoginResult]
	if err := c.Post(ctx, "/auth/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates a new account. It never touches the client token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Response[RegisterResult], error) {
	var res Response[RegisterResult]
	if err := c.Post(ctx, "/auth/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
