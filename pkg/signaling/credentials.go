package signaling

import (
	"strings"

	"github.com/backkem/kvsignaling/pkg/jsonscan"
)

// MaxRoleAliasLength bounds an IoT role alias.
const MaxRoleAliasLength = 128

// FetchCredentialsInput holds the inputs of an IoT credential provider request.
type FetchCredentialsInput struct {
	// CredentialEndpoint is the IoT credential provider host, with or
	// without an https:// prefix. Required.
	CredentialEndpoint string

	// RoleAlias names the IAM role alias. Required.
	RoleAlias string
}

// FetchCredentialsRequest renders the IoT credential provider URL. The thing
// name travels in a header and the request has no body; req.BodyLen is 0.
//
//	GET https://<endpoint>/role-aliases/<alias>/credentials
func (c *Context) FetchCredentialsRequest(req *Request, in FetchCredentialsInput) error {
	const op = "fetch credentials"
	if req == nil {
		return c.fail(op, ErrBadParam)
	}
	if err := checkRequired(in.CredentialEndpoint, MaxEndpointLength); err != nil {
		return c.fail(op, err)
	}
	if err := checkRequired(in.RoleAlias, MaxRoleAliasLength); err != nil {
		return c.fail(op, err)
	}

	url, body := req.begin()
	if !strings.HasPrefix(in.CredentialEndpoint, "https://") {
		_ = url.WriteString("https://")
	}
	_ = url.WriteString(in.CredentialEndpoint)
	_ = url.WriteString("/role-aliases/")
	_ = url.WriteString(in.RoleAlias)
	_ = url.WriteString("/credentials")

	if err := req.finish(url, body); err != nil {
		return c.fail(op, err)
	}
	c.built(op, req)
	return nil
}

// ParseFetchCredentialsResponse parses an IoT credential provider response.
// The access key id, secret and session token are required.
//
//	{"credentials":{"accessKeyId":"..","secretAccessKey":"..","sessionToken":"..","expiration":".."}}
func ParseFetchCredentialsResponse(data []byte, out *Credentials) error {
	if out == nil {
		return ErrBadParam
	}
	creds, err := expect(data, "credentials", jsonscan.Object)
	if err != nil {
		return err
	}

	*out = Credentials{}
	err = jsonscan.Members(creds, func(key, value []byte, typ jsonscan.Type) error {
		var err error
		switch string(key) {
		case "accessKeyId":
			out.AccessKeyID, err = stringValue(value, typ)
		case "secretAccessKey":
			out.SecretAccessKey, err = stringValue(value, typ)
		case "sessionToken":
			out.SessionToken, err = stringValue(value, typ)
		case "expiration":
			out.Expiration, err = stringValue(value, typ)
		}
		return err
	})
	if err != nil {
		return err
	}
	if len(out.AccessKeyID) == 0 || len(out.SecretAccessKey) == 0 || len(out.SessionToken) == 0 {
		return ErrUnexpectedResponse
	}
	return nil
}
