package signaling

import (
	"errors"
	"testing"
)

func TestFetchCredentialsRequest(t *testing.T) {
	c := newTestContext(t)
	const host = "c1234567890.credentials.iot.us-west-2.amazonaws.com"

	bare := func(req *Request) error {
		return c.FetchCredentialsRequest(req, FetchCredentialsInput{
			CredentialEndpoint: host,
			RoleAlias:          "KvsCameraIoTRoleAlias",
		})
	}
	checkRequest(t, bare, "https://"+host+"/role-aliases/KvsCameraIoTRoleAlias/credentials", "")
	checkShrink(t, bare)

	checkRequest(t, func(req *Request) error {
		return c.FetchCredentialsRequest(req, FetchCredentialsInput{
			CredentialEndpoint: "https://" + host,
			RoleAlias:          "alias",
		})
	}, "https://"+host+"/role-aliases/alias/credentials", "")

	if err := c.FetchCredentialsRequest(NewRequest(512, 0), FetchCredentialsInput{CredentialEndpoint: host}); !errors.Is(err, ErrBadParam) {
		t.Errorf("expected ErrBadParam, got %v", err)
	}
}

func TestParseFetchCredentialsResponse(t *testing.T) {
	raw := `{"credentials":{"accessKeyId":"ASIAEXAMPLE","secretAccessKey":"secret/key+example","sessionToken":"token==","expiration":"2026-10-17T12:00:00Z"}}`

	var creds Credentials
	if err := ParseFetchCredentialsResponse([]byte(raw), &creds); err != nil {
		t.Fatal(err)
	}
	if string(creds.AccessKeyID) != "ASIAEXAMPLE" ||
		string(creds.SecretAccessKey) != "secret/key+example" ||
		string(creds.SessionToken) != "token==" ||
		string(creds.Expiration) != "2026-10-17T12:00:00Z" {
		t.Errorf("got %+v", creds)
	}

	missing := `{"credentials":{"accessKeyId":"ASIAEXAMPLE","expiration":"2026-10-17T12:00:00Z"}}`
	if err := ParseFetchCredentialsResponse([]byte(missing), &creds); !errors.Is(err, ErrUnexpectedResponse) {
		t.Errorf("expected ErrUnexpectedResponse, got %v", err)
	}
}
