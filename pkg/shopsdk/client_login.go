package shopsdk

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

const pathLogin = "/users/login"

// Login exchanges a username and password for an access token.
func (c *SDKClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, pathLogin, LoginRequest{
		Username: username,
		Password: password,
	}, "")
	if err != nil {
		return "", err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out); err != nil {
		return "", err
	}

	token := strings.TrimSpace(out.AccessToken)
	if token == "" {
		return "", errors.New("shopsdk: login response carried no access token")
	}
	return token, nil
}
