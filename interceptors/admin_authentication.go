package interceptors

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// AdminKeyHeader carries the key admin requests are authorised with
const AdminKeyHeader = "X-Admin-Key"

// AdminAuthenticationInterceptor checks requests to the admin routes carry the
// configured admin key
type AdminAuthenticationInterceptor struct {
	AdminKey string
}

// AdminAuthenticationIntercept checks that the request presents the admin key
func (a *AdminAuthenticationInterceptor) AdminAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.AdminKey == "" {
			log.ErrorR(r, fmt.Errorf("AdminAuthenticationInterceptor error: no admin key configured"))
			w.WriteHeader(http.StatusForbidden)
			return
		}

		presented := r.Header.Get(AdminKeyHeader)
		if presented == "" {
			log.InfoR(r, "AdminAuthenticationInterceptor unauthorised: no admin key presented", log.Data{"path": r.URL.Path})
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(a.AdminKey)) != 1 {
			log.InfoR(r, "AdminAuthenticationInterceptor unauthorised: wrong admin key", log.Data{"path": r.URL.Path})
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
