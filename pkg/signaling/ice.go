package signaling

import (
	"github.com/backkem/kvsignaling/pkg/bounded"
	"github.com/backkem/kvsignaling/pkg/jsonscan"
)

// iceField is one bit of a record's presence mask.
type iceField uint8

const (
	iceFieldPassword iceField = 1 << iota
	iceFieldTTL
	iceFieldURIs
	iceFieldUsername
)

func iceFieldOf(key []byte) iceField {
	switch string(key) {
	case "Password":
		return iceFieldPassword
	case "Ttl":
		return iceFieldTTL
	case "Uris":
		return iceFieldURIs
	case "Username":
		return iceFieldUsername
	default:
		return 0
	}
}

// iceAssembler groups a stream of ICE server fields into records.
//
// A field that is already present on the current record opens the next
// record. Record boundaries of the input (objects, or none at all) are not
// consulted, so the same stream yields the same records either way. Once the
// list is full every further field is dropped.
type iceAssembler struct {
	list    *ICEServerList
	cur     int
	present [MaxICEServers]iceField
	full    bool
}

func (a *iceAssembler) add(key, value []byte, typ jsonscan.Type) error {
	field := iceFieldOf(key)
	if field == 0 || a.full {
		return nil
	}
	if a.present[a.cur]&field != 0 {
		if a.cur+1 >= MaxICEServers {
			a.full = true
			return nil
		}
		a.cur++
	}

	srv := &a.list.Servers[a.cur]
	var err error
	switch field {
	case iceFieldPassword:
		srv.Password, err = stringValue(value, typ)
	case iceFieldUsername:
		srv.Username, err = stringValue(value, typ)
	case iceFieldTTL:
		srv.TTLSeconds, err = parseTTL(value, typ, MinICEServerTTL, MaxICEServerTTL)
	case iceFieldURIs:
		err = appendURIs(srv, value, typ)
	}
	if err != nil {
		return err
	}
	a.present[a.cur] |= field
	return nil
}

// count returns the number of records touched, complete or not.
func (a *iceAssembler) count() int {
	if a.present[a.cur] == 0 {
		return a.cur
	}
	return a.cur + 1
}

func appendURIs(srv *ICEServer, value []byte, typ jsonscan.Type) error {
	if typ != jsonscan.Array {
		return ErrUnexpectedResponse
	}
	return jsonscan.Elements(value, func(uri []byte, typ jsonscan.Type) error {
		if typ != jsonscan.String {
			return ErrUnexpectedResponse
		}
		if srv.URICount >= MaxICEServerURIs {
			return ErrInvalidICEServerURIsCount
		}
		srv.URIs[srv.URICount] = uri
		srv.URICount++
		return nil
	})
}

// parseICEServerList fills out from either an array of server objects or a
// single object carrying the fields of several servers in sequence.
func parseICEServerList(value []byte, typ jsonscan.Type, out *ICEServerList) error {
	*out = ICEServerList{}
	a := iceAssembler{list: out}

	var err error
	switch typ {
	case jsonscan.Array:
		err = jsonscan.Elements(value, func(elem []byte, typ jsonscan.Type) error {
			if typ != jsonscan.Object {
				return ErrUnexpectedResponse
			}
			return jsonscan.Members(elem, a.add)
		})
	case jsonscan.Object:
		err = jsonscan.Members(value, a.add)
	default:
		err = ErrUnexpectedResponse
	}

	out.Count = a.count()
	return err
}

// checkICEServerList validates a caller-supplied list before rendering.
func checkICEServerList(l *ICEServerList) error {
	if l.Count < 0 || l.Count > MaxICEServers {
		return ErrInvalidICEServerCount
	}
	for i := 0; i < l.Count; i++ {
		srv := &l.Servers[i]
		if srv.URICount < 0 || srv.URICount > MaxICEServerURIs {
			return ErrInvalidICEServerURIsCount
		}
		if srv.TTLSeconds < MinICEServerTTL || srv.TTLSeconds > MaxICEServerTTL {
			return ErrInvalidTTL
		}
	}
	return nil
}

// writeICEServerList renders ,"IceServerList":[...] in the same field order
// the service uses.
func writeICEServerList(w *bounded.Writer, l *ICEServerList) {
	_ = w.WriteString(`,"IceServerList":[`)
	_ = w.Each(l.Count, func(i int) error {
		srv := &l.Servers[i]
		_ = w.WriteString(`{"Password":"`)
		_ = w.Write(srv.Password)
		_ = w.WriteString(`","Ttl":`)
		_ = w.WriteUint(uint64(srv.TTLSeconds))
		_ = w.WriteString(`,"Uris":[`)
		_ = w.Each(srv.URICount, func(j int) error {
			_ = w.WriteByte('"')
			_ = w.Write(srv.URIs[j])
			return w.WriteByte('"')
		})
		_ = w.WriteString(`],"Username":"`)
		_ = w.Write(srv.Username)
		return w.WriteString(`"}`)
	})
	_ = w.WriteByte(']')
}
