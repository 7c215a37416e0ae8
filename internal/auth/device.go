package auth

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"focusflow/internal/config"
	"focusflow/internal/models"
)

// userinfoResponse mirrors the standard OIDC userinfo claims we care
// about.
type userinfoResponse struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// DeviceFlowProvider logs in through the OAuth2 device-code flow
// (RFC 8628): the user opens a verification URL in a browser while the
// CLI polls the token endpoint. Unlike LocalProvider there is no guest
// fallback; without a cached valid token the user is not
// authenticated.
type DeviceFlowProvider struct {
	dir      string
	oauth    *oauth2.Config
	userinfo string
	out      io.Writer
}

func NewDeviceFlowProvider(dir string, cfg *config.Config, out io.Writer) *DeviceFlowProvider {
	return &DeviceFlowProvider{
		dir: dir,
		oauth: &oauth2.Config{
			ClientID: cfg.OAuthClientID,
			Scopes:   cfg.OAuthScopes,
			Endpoint: oauth2.Endpoint{
				DeviceAuthURL: cfg.OAuthDeviceAuthURL,
				TokenURL:      cfg.OAuthTokenURL,
			},
		},
		userinfo: cfg.OAuthUserinfoURL,
		out:      out,
	}
}

func (p *DeviceFlowProvider) Login(ctx context.Context, _ string) (models.Principal, error) {
	resp, err := p.oauth.DeviceAuth(ctx)
	if err != nil {
		return models.Principal{}, fmt.Errorf("device authorization request: %w", err)
	}

	fmt.Fprintf(p.out, "Open %s and enter code: %s\n", resp.VerificationURI, resp.UserCode)

	token, err := p.oauth.DeviceAccessToken(ctx, resp)
	if err != nil {
		return models.Principal{}, fmt.Errorf("waiting for device authorization: %w", err)
	}

	principal, err := p.fetchPrincipal(ctx, token)
	if err != nil {
		return models.Principal{}, err
	}

	if err := saveProfile(p.dir, &profile{Principal: principal, Token: token}); err != nil {
		return models.Principal{}, err
	}
	return principal, nil
}

func (p *DeviceFlowProvider) fetchPrincipal(ctx context.Context, token *oauth2.Token) (models.Principal, error) {
	var info userinfoResponse
	resp, err := resty.New().
		SetTimeout(15*time.Second).
		R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&info).
		Get(p.userinfo)
	if err != nil {
		return models.Principal{}, fmt.Errorf("fetching userinfo: %w", err)
	}
	if resp.IsError() {
		return models.Principal{}, fmt.Errorf("userinfo request failed: %s", resp.Status())
	}
	if info.Sub == "" {
		return models.Principal{}, fmt.Errorf("userinfo response missing subject")
	}

	name := info.Name
	if name == "" {
		name = info.Sub
	}
	return models.Principal{
		ID:          info.Sub,
		DisplayName: name,
		AvatarURL:   info.Picture,
	}, nil
}

func (p *DeviceFlowProvider) Logout() error {
	return removeProfile(p.dir)
}

func (p *DeviceFlowProvider) Current() (models.Principal, bool) {
	prof, err := loadProfile(p.dir)
	if err != nil {
		return models.Principal{}, false
	}
	if prof.Token == nil || !prof.Token.Valid() {
		return models.Principal{}, false
	}
	return prof.Principal, true
}
