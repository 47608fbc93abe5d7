package types

import "fmt"

// Reason is the single flat error taxonomy described in spec.md §7.
// Every failed operation attaches exactly one Reason; there is no
// nesting. Each constant keeps a unique, stable name so tests can
// assert on it directly (spec.md §9).
type Reason string

const (
	// Stream
	ReasonStreamClosed Reason = "stream-closed"
	ReasonShortIO      Reason = "short-io"

	// Structural
	ReasonWrongHeaderSize           Reason = "wrong-header-size"
	ReasonWrongClassID              Reason = "wrong-class-id"
	ReasonInvalidLinkInfoHeaderSize Reason = "invalid-link-info-header-size"
	ReasonVolumeIDSizeTooSmall      Reason = "volume-id-size-too-small"
	ReasonUnknownExtraDataSignature Reason = "unknown-extra-data-signature"
	ReasonDuplicateExtraDataBlock   Reason = "duplicate-extra-data-block"
	ReasonExtraDataWrongSize        Reason = "extra-data-wrong-size"
	ReasonTrackerWrongVersion       Reason = "tracker-wrong-version"
	ReasonIdListSizeMismatch        Reason = "idlist-size-mismatch"
	ReasonCNRLSizeTooSmall          Reason = "cnrl-size-too-small"

	// Contents: one per required-but-absent field
	ReasonMissingIdList                  Reason = "missing-idlist"
	ReasonMissingIdListItem              Reason = "missing-idlist-item"
	ReasonMissingVolumeIDData            Reason = "missing-volume-id-data"
	ReasonMissingLocalBasePath           Reason = "missing-local-base-path"
	ReasonMissingCommonPathSuffix        Reason = "missing-common-path-suffix"
	ReasonMissingLocalBasePathUnicode    Reason = "missing-local-base-path-unicode"
	ReasonMissingCommonPathSuffixUnicode Reason = "missing-common-path-suffix-unicode"
	ReasonMissingNetName                 Reason = "missing-net-name"
	ReasonMissingDeviceName              Reason = "missing-device-name"
	ReasonMissingNetNameUnicode          Reason = "missing-net-name-unicode"
	ReasonMissingDeviceNameUnicode       Reason = "missing-device-name-unicode"
	ReasonMissingName                    Reason = "missing-name"
	ReasonMissingRelativePath            Reason = "missing-relative-path"
	ReasonMissingWorkingDir              Reason = "missing-working-dir"
	ReasonMissingArguments               Reason = "missing-arguments"
	ReasonMissingIconLocation            Reason = "missing-icon-location"
	ReasonMissingExtraDataPayload        Reason = "missing-extra-data-payload"

	// Argument
	ReasonNilTarget Reason = "nil-target"
)

// Error is the single error type returned by every failing decode,
// encode and mutator operation in this library, carrying a Reason plus
// whatever context helps a caller or test pinpoint the failure. The
// Open and Create file helpers return errors from the os package
// unchanged. Modeled on the teacher's *FormatError{off, msg, val}.
type Error struct {
	Reason Reason
	Offset int64       // byte offset, when known; 0 otherwise
	Detail string      // human-readable context
	Val    interface{} // offending value, if any
	Err    error       // wrapped underlying error (I/O failures), if any
}

func (e *Error) Error() string {
	msg := string(e.Reason)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Val != nil {
		msg += fmt.Sprintf(" (%v)", e.Val)
	}
	if e.Offset != 0 {
		msg += fmt.Sprintf(" at byte offset %#x", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Reason,
// so callers can write errors.Is(err, &types.Error{Reason: types.ReasonNilTarget}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// NewError constructs an *Error for reason with an optional detail message.
func NewError(reason Reason, detail string) *Error {
	return &Error{Reason: reason, Detail: detail}
}

// WrapIO wraps an I/O failure as a short-io Error.
func WrapIO(err error, detail string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Reason: ReasonShortIO, Detail: detail, Err: err}
}

var (
	// ErrWrongHeaderSize is returned when header_size != 0x4C.
	ErrWrongHeaderSize = &Error{Reason: ReasonWrongHeaderSize}
	// ErrWrongClassID is returned when the 16-byte class identifier
	// does not match the fixed shell-link CLSID.
	ErrWrongClassID = &Error{Reason: ReasonWrongClassID}
)
