package peer

import (
	"github.com/pion/webrtc/v4"

	"github.com/backkem/kvsignaling/pkg/signaling"
)

// ICEServers converts a parsed ICE server list. Records without URIs are
// skipped. The strings are copied, so the result outlives the response
// buffer the list borrows from.
func ICEServers(list *signaling.ICEServerList) []webrtc.ICEServer {
	if list == nil || list.Count == 0 {
		return nil
	}

	servers := make([]webrtc.ICEServer, 0, list.Count)
	for i := 0; i < list.Count && i < len(list.Servers); i++ {
		s := &list.Servers[i]
		if s.URICount == 0 {
			continue
		}

		urls := make([]string, 0, s.URICount)
		for j := 0; j < s.URICount && j < len(s.URIs); j++ {
			urls = append(urls, string(s.URIs[j]))
		}

		server := webrtc.ICEServer{URLs: urls}
		if len(s.Username) != 0 {
			server.Username = string(s.Username)
			server.Credential = string(s.Password)
			server.CredentialType = webrtc.ICECredentialTypePassword
		}
		servers = append(servers, server)
	}
	return servers
}

// STUNServer returns the region's STUN server.
func STUNServer(region string) webrtc.ICEServer {
	host := "stun.kinesisvideo." + region + ".amazonaws.com"
	if len(region) > 3 && region[:3] == "cn-" {
		host += ".cn"
	}
	return webrtc.ICEServer{URLs: []string{"stun:" + host + ":443"}}
}

// Configuration returns a peer connection configuration using the region's
// STUN server followed by the servers in list.
func Configuration(region string, list *signaling.ICEServerList) webrtc.Configuration {
	servers := []webrtc.ICEServer{STUNServer(region)}
	servers = append(servers, ICEServers(list)...)
	return webrtc.Configuration{ICEServers: servers}
}
