package transcoder

import (
	"github.com/wippyai/xlcodec/protocol"
	"github.com/wippyai/xlcodec/xloper"
)

// ErrorOffset separates wire error codes from host error codes.
const ErrorOffset = 2000

// WireError maps a host error code to the wire enumeration. Codes the host
// does not define map to #VALUE!.
func WireError(host xloper.ErrorCode) protocol.XlError {
	if !host.Valid() {
		return protocol.XlErrorValue
	}
	return protocol.XlError(int32(host) + ErrorOffset)
}

// HostError maps a wire error code to the host numbering. Codes outside the
// wire enumeration map to #VALUE!.
func HostError(wire protocol.XlError) xloper.ErrorCode {
	if _, ok := protocol.EnumNamesXlError[wire]; !ok {
		return xloper.ErrorValue
	}
	return xloper.ErrorCode(int32(wire) - ErrorOffset)
}
