package semantic

import "github.com/openbmc-tools/regval/internal/document"

// byteArrayActions are the action payloads that carry paired masks/values
// byte arrays.
var byteArrayActions = []string{"i2c_write_bytes", "i2c_compare_bytes"}

// checkByteArrays verifies that every i2c byte action specifying masks has
// exactly one mask per value. A missing values array counts as length zero.
func checkByteArrays(doc any) error {
	for _, action := range byteArrayActions {
		for _, v := range document.GetValues(doc, action) {
			payload, ok := asObject(v)
			if !ok {
				continue
			}
			masks, ok := asArray(payload["masks"])
			if !ok {
				continue
			}
			values, _ := asArray(payload["values"])
			if len(masks) != len(values) {
				return &ArityMismatchError{
					Action:    action,
					MasksLen:  len(masks),
					ValuesLen: len(values),
				}
			}
		}
	}
	return nil
}
