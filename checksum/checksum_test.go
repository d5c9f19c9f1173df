package checksum

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var checksumFormat = regexp.MustCompile(`^[0-9a-f]{64}###.+$`)

func TestUnitSign(t *testing.T) {
	payload := []byte(`{"merchantId":"M1","amount":50000}`)

	Convey("Checksum has the digest###index format", t, func() {
		So(checksumFormat.MatchString(Sign(payload, "/pg/v1/pay", "salt", "1")), ShouldBeTrue)
		So(checksumFormat.MatchString(Sign([]byte{}, "", "", "2")), ShouldBeTrue)
	})

	Convey("Checksum hashes base64 payload, endpoint and key in that order", t, func() {
		encoded := base64.StdEncoding.EncodeToString(payload)
		sum := sha256.Sum256([]byte(encoded + "/pg/v1/pay" + "salt"))

		So(Sign(payload, "/pg/v1/pay", "salt", "1"), ShouldEqual, hex.EncodeToString(sum[:])+"###1")
		So(SignEncoded(encoded, "/pg/v1/pay", "salt", "1"), ShouldEqual, Sign(payload, "/pg/v1/pay", "salt", "1"))
	})

	Convey("Signing identical inputs is deterministic", t, func() {
		So(Sign(payload, "/pg/v1/pay", "salt", "1"), ShouldEqual, Sign(payload, "/pg/v1/pay", "salt", "1"))
	})

	Convey("Changing any single input changes the checksum", t, func() {
		base := Sign(payload, "/pg/v1/pay", "salt", "1")

		So(Sign([]byte(`{"merchantId":"M1","amount":50001}`), "/pg/v1/pay", "salt", "1"), ShouldNotEqual, base)
		So(Sign(payload, "/pg/v1/refund", "salt", "1"), ShouldNotEqual, base)
		So(Sign(payload, "/pg/v1/pay", "pepper", "1"), ShouldNotEqual, base)
		So(Sign(payload, "/pg/v1/pay", "salt", "2"), ShouldNotEqual, base)
	})
}

func TestUnitSignStatusCheck(t *testing.T) {
	Convey("Status checksum omits the payload", t, func() {
		path := "/pg/v1/status/M1/ORDER1"
		sum := sha256.Sum256([]byte(path + "salt"))

		checksum := SignStatusCheck(path, "salt", "1")
		So(checksum, ShouldEqual, hex.EncodeToString(sum[:])+"###1")
		So(checksumFormat.MatchString(checksum), ShouldBeTrue)
	})

	Convey("Status checksum differs per order", t, func() {
		So(SignStatusCheck("/pg/v1/status/M1/A", "salt", "1"), ShouldNotEqual, SignStatusCheck("/pg/v1/status/M1/B", "salt", "1"))
	})
}
