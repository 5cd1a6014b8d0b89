package piano

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// callQuery is the query string sent along with every call.
type callQuery struct {
	// RouteID is a per-request id the service echoes in its logs.
	RouteID string `url:"rid"`
	// ListenerID is only known after login.
	ListenerID string `url:"lid,omitempty"`
	// Method repeats the XML-RPC method name without the listener prefix.
	Method string `url:"method"`
}

// marshalQuery turns the fields of a struct into query values, using the
// "url" tag for the parameter name. Fields tagged omitempty are skipped when
// they hold their zero value.
func marshalQuery(in any) (url.Values, error) {
	out := url.Values{}
	rv := reflect.ValueOf(in)
	st := rv.Type()
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot marshal %T as a query", in)
	}
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		name, ok := field.Tag.Lookup("url")
		var omitEmpty bool
		if ok {
			nameParts := strings.Split(name, ",")
			name = nameParts[0]
			for _, part := range nameParts[1:] {
				if part == "omitempty" {
					omitEmpty = true
				}
			}
		} else {
			name = field.Name
		}
		if name == "" {
			return nil, errors.New("invalid 'url' tag")
		}

		fv := rv.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}

		switch fv.Kind() {
		case reflect.String:
			out.Set(name, fv.String())
		case reflect.Bool:
			out.Set(name, strconv.FormatBool(fv.Bool()))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out.Set(name, strconv.FormatInt(fv.Int(), 10))
		default:
			return nil, fmt.Errorf("field %s: unsupported kind %s", field.Name, fv.Kind())
		}
	}
	return out, nil
}
