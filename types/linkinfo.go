package types

import (
	"bytes"
	"fmt"
	"io"
)

// VolumeId is the Volume-ID sub-structure of LinkInfo (spec.md §4.4).
// LabelData holds the on-disk label bytes verbatim (8-bit code-page
// bytes when LabelUnicode is false, little-endian UTF-16 code units
// packed two bytes apiece when true); callers needing text should
// decode via Label/WideLabel.
type VolumeId struct {
	DriveType    DriveType
	DriveSerial  uint32
	LabelUnicode bool
	LabelData    []byte
}

const (
	volumeIdPrefixAnsi    = 16
	volumeIdPrefixUnicode = 20
)

// Label returns LabelData decoded as an 8-bit code-page string. It is
// meaningless when LabelUnicode is true.
func (v VolumeId) Label() string { return string(v.LabelData) }

// WideLabel returns LabelData decoded as little-endian UTF-16 code
// units. It is meaningless when LabelUnicode is false.
func (v VolumeId) WideLabel() []uint16 {
	units := make([]uint16, len(v.LabelData)/2)
	for i := range units {
		units[i] = uint16(v.LabelData[i*2]) | uint16(v.LabelData[i*2+1])<<8
	}
	return units
}

// Size is the on-disk volume_id_size field (spec.md §4.4): the 16- or
// 20-byte prefix plus the label bytes.
func (v VolumeId) Size() uint32 {
	prefix := uint32(volumeIdPrefixAnsi)
	if v.LabelUnicode {
		prefix = volumeIdPrefixUnicode
	}
	return prefix + uint32(len(v.LabelData))
}

func decodeVolumeId(r io.Reader) (*VolumeId, error) {
	size, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	driveType, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	driveSerial, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	labelOffset, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	prefix := uint32(volumeIdPrefixAnsi)
	unicode := labelOffset == 0x14
	if unicode {
		prefix = volumeIdPrefixUnicode
		if _, err := ReadUint32(r); err != nil { // volume_label_offset_unicode, recomputed on write
			return nil, err
		}
	}
	if size <= prefix {
		return nil, NewError(ReasonVolumeIDSizeTooSmall, fmt.Sprintf("volume_id_size=%d prefix=%d", size, prefix))
	}
	label, err := ReadBytes(r, int(size-prefix))
	if err != nil {
		return nil, err
	}
	return &VolumeId{
		DriveType:    DriveType(driveType),
		DriveSerial:  driveSerial,
		LabelUnicode: unicode,
		LabelData:    label,
	}, nil
}

func (v VolumeId) encode(w io.Writer) error {
	if err := WriteUint32(w, v.Size()); err != nil {
		return err
	}
	if err := WriteUint32(w, uint32(v.DriveType)); err != nil {
		return err
	}
	if err := WriteUint32(w, v.DriveSerial); err != nil {
		return err
	}
	if v.LabelUnicode {
		if err := WriteUint32(w, 0x14); err != nil {
			return err
		}
		if err := WriteUint32(w, volumeIdPrefixUnicode); err != nil {
			return err
		}
	} else {
		if err := WriteUint32(w, volumeIdPrefixAnsi); err != nil {
			return err
		}
	}
	if _, err := w.Write(v.LabelData); err != nil {
		return WrapIO(err, "write volume label")
	}
	return nil
}

// CommonNetworkRelativeLink is LinkInfo's network-share sub-structure
// (spec.md §4.4). HasUnicodeNames mirrors the net_name_offset > 0x14
// signal: when true, NetNameUnicode/DeviceNameUnicode are present even
// if empty.
type CommonNetworkRelativeLink struct {
	Flags               uint32
	NetworkProviderType NetworkProviderType
	NetName             string
	DeviceName          string
	HasUnicodeNames     bool
	NetNameUnicode      []uint16
	DeviceNameUnicode   []uint16
}

const (
	cnrlPrefix        = 0x14
	cnrlPrefixUnicode = 0x1C
)

func (c CommonNetworkRelativeLink) prefix() uint32 {
	if c.HasUnicodeNames {
		return cnrlPrefixUnicode
	}
	return cnrlPrefix
}

// Size is the on-disk CommonNetworkRelativeLink size field.
func (c CommonNetworkRelativeLink) Size() uint32 {
	sz := c.prefix() + uint32(len(c.NetName)) + 1 + uint32(len(c.DeviceName)) + 1
	if c.HasUnicodeNames {
		sz += uint32(len(c.NetNameUnicode))*2 + 2 + uint32(len(c.DeviceNameUnicode))*2 + 2
	}
	return sz
}

func decodeCNRL(r io.Reader) (*CommonNetworkRelativeLink, error) {
	size, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	if size < cnrlPrefix {
		return nil, NewError(ReasonCNRLSizeTooSmall, fmt.Sprintf("size=%d", size))
	}
	flags, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	netNameOffset, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	if _, err := ReadUint32(r); err != nil { // device_name_offset, recomputed on write
		return nil, err
	}
	netProviderType, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	unicode := netNameOffset > cnrlPrefix
	if unicode {
		if _, err := ReadUint32(r); err != nil { // net_name_offset_unicode
			return nil, err
		}
		if _, err := ReadUint32(r); err != nil { // device_name_offset_unicode
			return nil, err
		}
	}
	netName, err := ReadAnsiNulString(r)
	if err != nil {
		return nil, err
	}
	deviceName, err := ReadAnsiNulString(r)
	if err != nil {
		return nil, err
	}
	c := &CommonNetworkRelativeLink{
		Flags:               flags,
		NetworkProviderType: NetworkProviderType(netProviderType),
		NetName:             netName,
		DeviceName:          deviceName,
		HasUnicodeNames:     unicode,
	}
	if unicode {
		netNameWide, err := ReadWideNulString(r)
		if err != nil {
			return nil, err
		}
		deviceNameWide, err := ReadWideNulString(r)
		if err != nil {
			return nil, err
		}
		c.NetNameUnicode = netNameWide
		c.DeviceNameUnicode = deviceNameWide
	}
	return c, nil
}

func (c CommonNetworkRelativeLink) encode(w io.Writer) error {
	if err := WriteUint32(w, c.Size()); err != nil {
		return err
	}
	if err := WriteUint32(w, c.Flags); err != nil {
		return err
	}
	netNameOffset := c.prefix()
	deviceNameOffset := netNameOffset + uint32(len(c.NetName)) + 1
	if err := WriteUint32(w, netNameOffset); err != nil {
		return err
	}
	if err := WriteUint32(w, deviceNameOffset); err != nil {
		return err
	}
	if err := WriteUint32(w, uint32(c.NetworkProviderType)); err != nil {
		return err
	}
	if c.HasUnicodeNames {
		netNameOffsetUnicode := deviceNameOffset + uint32(len(c.DeviceName)) + 1
		deviceNameOffsetUnicode := netNameOffsetUnicode + uint32(len(c.NetNameUnicode))*2 + 2
		if err := WriteUint32(w, netNameOffsetUnicode); err != nil {
			return err
		}
		if err := WriteUint32(w, deviceNameOffsetUnicode); err != nil {
			return err
		}
	}
	if err := WriteAnsiNulString(w, c.NetName); err != nil {
		return err
	}
	if err := WriteAnsiNulString(w, c.DeviceName); err != nil {
		return err
	}
	if c.HasUnicodeNames {
		if err := WriteWideNulString(w, c.NetNameUnicode); err != nil {
			return err
		}
		if err := WriteWideNulString(w, c.DeviceNameUnicode); err != nil {
			return err
		}
	}
	return nil
}

// LinkInfo describes the target item's location on a volume and/or
// network share (spec.md §4.4). Offsets are never trusted as the
// source of truth: on decode they are read only to keep the field
// layout aligned and then discarded; on encode they are recomputed
// from the actual section sizes (spec.md §9).
type LinkInfo struct {
	HeaderSize uint32
	Flags      LinkInfoFlag

	VolumeID         *VolumeId
	LocalBasePath    string
	CNRL             *CommonNetworkRelativeLink
	CommonPathSuffix string

	LocalBasePathUnicode    []uint16
	CommonPathSuffixUnicode []uint16
}

// DecodeLinkInfo reads a length-prefixed LinkInfo structure (spec.md §4.4).
func DecodeLinkInfo(r io.Reader) (*LinkInfo, error) {
	linkInfoSize, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}
	if linkInfoSize < 4 {
		return nil, NewError(ReasonInvalidLinkInfoHeaderSize, "link_info_size smaller than its own field")
	}
	body, err := ReadBytes(r, int(linkInfoSize-4))
	if err != nil {
		return nil, err
	}
	br := bytes.NewReader(body)

	headerSize, err := ReadUint32(br)
	if err != nil {
		return nil, err
	}
	if headerSize != 0x1C && headerSize < 0x24 {
		return nil, NewError(ReasonInvalidLinkInfoHeaderSize, fmt.Sprintf("got 0x%X", headerSize))
	}
	flags, err := ReadUint32(br)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 4; i++ { // volume_id/local_base_path/cnrl/common_path_suffix offsets, recomputed on write
		if _, err := ReadUint32(br); err != nil {
			return nil, err
		}
	}
	wide := headerSize >= 0x24
	if wide {
		for i := 0; i < 2; i++ { // local_base_path_offset_unicode, common_path_suffix_offset_unicode
			if _, err := ReadUint32(br); err != nil {
				return nil, err
			}
		}
	}

	li := &LinkInfo{HeaderSize: headerSize, Flags: LinkInfoFlag(flags)}

	if li.Flags.Has(VolumeIDAndLocalBasePath) {
		vid, err := decodeVolumeId(br)
		if err != nil {
			return nil, err
		}
		li.VolumeID = vid
		lbp, err := ReadAnsiNulString(br)
		if err != nil {
			return nil, err
		}
		li.LocalBasePath = lbp
	}
	if li.Flags.Has(CommonNetworkRelativeLinkAndPathSuffix) {
		cnrl, err := decodeCNRL(br)
		if err != nil {
			return nil, err
		}
		li.CNRL = cnrl
	}
	suffix, err := ReadAnsiNulString(br)
	if err != nil {
		return nil, err
	}
	li.CommonPathSuffix = suffix

	if wide {
		if li.VolumeID != nil {
			wideLBP, err := ReadWideNulString(br)
			if err != nil {
				return nil, err
			}
			li.LocalBasePathUnicode = wideLBP
		}
		wideSuffix, err := ReadWideNulString(br)
		if err != nil {
			return nil, err
		}
		li.CommonPathSuffixUnicode = wideSuffix
	}
	return li, nil
}

// Encode writes the LinkInfo structure, recomputing every internal
// offset and the leading link_info_size field from the actual
// section contents (spec.md §9).
func (li LinkInfo) Encode(w io.Writer) error {
	wide := li.HeaderSize >= 0x24 || len(li.LocalBasePathUnicode) > 0 || len(li.CommonPathSuffixUnicode) > 0
	headerSize := uint32(0x1C)
	if wide {
		headerSize = 0x24
	}

	var flags LinkInfoFlag
	if li.VolumeID != nil {
		flags |= VolumeIDAndLocalBasePath
	}
	if li.CNRL != nil {
		flags |= CommonNetworkRelativeLinkAndPathSuffix
	}

	var data bytes.Buffer
	var volumeIDOffset, localBasePathOffset, cnrlOffset, commonPathSuffixOffset uint32
	var localBasePathOffsetUnicode, commonPathSuffixOffsetUnicode uint32
	cursor := headerSize

	if li.VolumeID != nil {
		volumeIDOffset = cursor
		if err := li.VolumeID.encode(&data); err != nil {
			return err
		}
		cursor += li.VolumeID.Size()

		localBasePathOffset = cursor
		if err := WriteAnsiNulString(&data, li.LocalBasePath); err != nil {
			return err
		}
		cursor += uint32(len(li.LocalBasePath)) + 1
	}
	if li.CNRL != nil {
		cnrlOffset = cursor
		if err := li.CNRL.encode(&data); err != nil {
			return err
		}
		cursor += li.CNRL.Size()
	}
	commonPathSuffixOffset = cursor
	if err := WriteAnsiNulString(&data, li.CommonPathSuffix); err != nil {
		return err
	}
	cursor += uint32(len(li.CommonPathSuffix)) + 1

	if wide {
		if li.VolumeID != nil {
			localBasePathOffsetUnicode = cursor
			if err := WriteWideNulString(&data, li.LocalBasePathUnicode); err != nil {
				return err
			}
			cursor += uint32(len(li.LocalBasePathUnicode))*2 + 2
		}
		commonPathSuffixOffsetUnicode = cursor
		if err := WriteWideNulString(&data, li.CommonPathSuffixUnicode); err != nil {
			return err
		}
		cursor += uint32(len(li.CommonPathSuffixUnicode))*2 + 2
	}

	var body bytes.Buffer
	if err := WriteUint32(&body, headerSize); err != nil {
		return err
	}
	if err := WriteUint32(&body, uint32(flags)); err != nil {
		return err
	}
	if err := WriteUint32(&body, volumeIDOffset); err != nil {
		return err
	}
	if err := WriteUint32(&body, localBasePathOffset); err != nil {
		return err
	}
	if err := WriteUint32(&body, cnrlOffset); err != nil {
		return err
	}
	if err := WriteUint32(&body, commonPathSuffixOffset); err != nil {
		return err
	}
	if wide {
		if err := WriteUint32(&body, localBasePathOffsetUnicode); err != nil {
			return err
		}
		if err := WriteUint32(&body, commonPathSuffixOffsetUnicode); err != nil {
			return err
		}
	}
	body.Write(data.Bytes())

	if err := WriteUint32(w, uint32(body.Len())+4); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return WrapIO(err, "write link info body")
	}
	return nil
}
