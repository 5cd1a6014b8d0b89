package piano

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeRequest builds the methodCall document for method. Params may be
// strings, bools or ints; strings are escaped with [EncodeString].
func EncodeRequest(method string, params ...any) (string, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><methodCall><methodName>`)
	b.WriteString(EncodeString(method))
	b.WriteString(`</methodName><params>`)
	for i, p := range params {
		b.WriteString("<param><value>")
		switch v := p.(type) {
		case string:
			b.WriteString("<string>" + EncodeString(v) + "</string>")
		case bool:
			if v {
				b.WriteString("<boolean>1</boolean>")
			} else {
				b.WriteString("<boolean>0</boolean>")
			}
		case int:
			b.WriteString("<int>" + strconv.Itoa(v) + "</int>")
		default:
			return "", fmt.Errorf("param %d of %s: unsupported type %T", i, method, p)
		}
		b.WriteString("</value></param>")
	}
	b.WriteString("</params></methodCall>")
	return b.String(), nil
}
