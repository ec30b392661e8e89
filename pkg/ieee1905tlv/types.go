// Package ieee1905tlv is the concrete 1905.1/1a TLV catalog: one
// Definition per type, registered into a pkg/tlv.Table by DefaultTable.
//
// Each file groups a family of related TLVs, mirroring the per-protocol
// split the teacher's TLV builders used (one file per discovery
// protocol); here the split is per 1905 message-family instead.
package ieee1905tlv

// TLV type bytes, IEEE 1905.1/1a.
const (
	TypeEndOfMessage                       = 0x00
	TypeALMACAddress                       = 0x01
	TypeMACAddress                         = 0x02
	TypeDeviceInformation                  = 0x03
	TypeDeviceBridgingCapability           = 0x04
	TypeNon1905NeighborDeviceList          = 0x06
	TypeNeighborDeviceList                 = 0x07
	TypeLinkMetricQuery                    = 0x08
	TypeTransmitterLinkMetric              = 0x09
	TypeReceiverLinkMetric                 = 0x0A
	TypeSearchedRole                       = 0x0D
	TypeAutoconfigFrequencyBand            = 0x0E
	TypeSupportedRole                      = 0x0F
	TypeSupportedFrequencyBand             = 0x10
	TypeWSC                                = 0x11
	TypePushButtonEventNotification        = 0x12
	TypePushButtonJoinNotification         = 0x13
	TypeSearchedService                    = 0x80
	TypeSupportedService                   = 0x81
	TypeControlURL                         = 0x82
	TypeIPv4                               = 0x83
	TypeIPv6                               = 0x84
	TypePushButtonGenericPHYEventNotif     = 0x85
	TypeDeviceIdentification               = 0x86
	TypeProfileVersion                     = 0x87
	TypePowerOffInterface                  = 0x88
	TypeInterfacePowerChangeInformation    = 0x89
	TypeInterfacePowerChangeStatus         = 0x8A
	TypeGenericPHYDeviceInformation        = 0x8B
)

// Role, band, profile, and service enumerations shared across several
// TLVs in the AP-autoconfiguration family.
const (
	RoleRegistrar uint8 = 0x00
)

const (
	FreqBand24GHz uint8 = 0x00
	FreqBand5GHz  uint8 = 0x01
	FreqBand60GHz uint8 = 0x02
)

const (
	ServiceController uint8 = 0x00
	ServiceAgent      uint8 = 0x01
)

const (
	Profile1905_1  uint8 = 0x00
	Profile1905_1a uint8 = 0x01
)

const (
	LinkMetricScopeAll              uint8 = 0x00
	LinkMetricScopeSpecificNeighbor uint8 = 0x01
)

const (
	PowerStateOn       uint8 = 0x00
	PowerStateOff      uint8 = 0x01
	PowerStateRadioOff uint8 = 0x02
)

const (
	PowerChangeCompleted uint8 = 0x00
	PowerChangeNoChange  uint8 = 0x01
	PowerChangeAlternate uint8 = 0x02
)
