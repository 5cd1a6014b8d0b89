package piano

// Result is the outcome of a call the service answers with a single flag.
type Result int

const (
	ResultErr Result = iota
	ResultOK
)

func (r Result) String() string {
	if r == ResultOK {
		return "OK"
	}
	return "ERR"
}

// Every response is wrapped in the same envelope:
//
//	<methodResponse>
//	    <params>
//	        <param>
//	            <value>...</value>
//	        </param>
//	    </params>
//	</methodResponse>
//
// or, when the call failed on the service side:
//
//	<methodResponse>
//	    <fault>
//	        <value><struct>faultCode, faultString</struct></value>
//	    </fault>
//	</methodResponse>
var (
	envelopeValue  = []string{"params", "param", "value"}
	envelopeStruct = []string{"params", "param", "value", "struct"}
	envelopeData   = []string{"params", "param", "value", "array", "data"}
)

// openEnvelope parses doc and checks that it is a methodResponse which is not
// a fault.
func openEnvelope(doc string) (*node, error) {
	root, err := parseDocument(doc)
	if err != nil {
		return nil, err
	}
	if root.name != "methodResponse" {
		return nil, &ShapeError{Missing: "methodResponse"}
	}
	if root.child("fault") != nil {
		return nil, parseFault(root)
	}
	return root, nil
}

func parseFault(root *node) error {
	structNode, err := descend(root, "fault", "value", "struct")
	if err != nil {
		return err
	}
	var fault FaultError
	err = walkStruct(structNode, &fault, func(f *FaultError, key string, value *node) error {
		s, ok := scalarText(value)
		if !ok {
			return nil
		}
		switch key {
		case "faultCode":
			f.Code = s
		case "faultString":
			f.Message = s
		}
		return nil
	})
	if err != nil {
		return err
	}
	return &fault
}

// ParseUserInfo parses the response to a login call.
//
//	<methodResponse><params><param><value><struct>
//	    <member><name>authToken</name><value>...</value></member>
//	    ...
//	</struct></value></param></params></methodResponse>
func ParseUserInfo(doc string) (*UserInfo, error) {
	root, err := openEnvelope(doc)
	if err != nil {
		return nil, err
	}
	structNode, err := descend(root, envelopeStruct...)
	if err != nil {
		return nil, err
	}

	var user UserInfo
	if err := walkStruct(structNode, &user, visitUserInfo); err != nil {
		return nil, err
	}
	return &user, nil
}

// ParseStations parses the response to a station listing. Stations are
// returned in the order the service sent them.
func ParseStations(doc string) ([]Station, error) {
	return parseArray(doc, visitStation)
}

// ParsePlaylist parses a playlist fragment. Songs are returned in the order
// the service sent them, and each audio URL is decrypted with dec. A URL that
// cannot be reconstructed fails the whole parse with a [ReconstructionError].
func ParsePlaylist(doc string, dec Decrypter) ([]Song, error) {
	return parseArray(doc, songVisitor(dec))
}

// parseArray builds one record per <value> of the envelope's array data. A
// <value> without a <struct> yields a zero record.
func parseArray[T any](doc string, visit memberVisitor[T]) ([]T, error) {
	root, err := openEnvelope(doc)
	if err != nil {
		return nil, err
	}
	data, err := descend(root, envelopeData...)
	if err != nil {
		return nil, err
	}

	var records []T
	for _, value := range data.children {
		if value.name != "value" {
			continue
		}
		var rec T
		if structNode := value.child("struct"); structNode != nil {
			if err := walkStruct(structNode, &rec, visit); err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseSimpleResult parses the answer to a call that only acknowledges
// success. The value "1" is [ResultOK]; anything else, including "0", is
// [ResultErr]. Both <value>1</value> and <value><boolean>1</boolean></value>
// are accepted.
func ParseSimpleResult(doc string) (Result, error) {
	root, err := openEnvelope(doc)
	if err != nil {
		return ResultErr, err
	}
	value, err := descend(root, envelopeValue...)
	if err != nil {
		return ResultErr, err
	}

	if s, ok := scalarText(value); ok && s == "1" {
		return ResultOK, nil
	}
	return ResultErr, nil
}
