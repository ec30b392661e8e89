package ieee1905tlv

import "github.com/netlayer/ieee1905al/pkg/tlv"

// DefaultTable returns the pkg/tlv.Table carrying every 1905.1/1a TLV
// definition this catalog implements. Type 0x00 (End of message) is
// intentionally absent: pkg/tlv.ParseList/ForgeList treat it as the
// terminator sentinel, never as a TLV dispatched through a Definition.
func DefaultTable() tlv.Table {
	var t tlv.Table

	t[TypeALMACAddress] = tlv.Definition{
		Name: "AL MAC address", Parse: parseALMACAddress, Length: lengthALMACAddress,
		Forge: forgeALMACAddress, Print: printALMACAddress, Compare: compareALMACAddress,
	}
	t[TypeMACAddress] = tlv.Definition{
		Name: "MAC address", Parse: parseMACAddress, Length: lengthMACAddress,
		Forge: forgeMACAddress, Print: printMACAddress, Compare: compareMACAddress,
	}
	t[TypeDeviceInformation] = tlv.Definition{
		Name: "Device information", Parse: parseDeviceInformation, Length: lengthDeviceInformation,
		Forge: forgeDeviceInformation, Print: printDeviceInformation, Compare: compareDeviceInformation,
	}
	t[TypeDeviceBridgingCapability] = tlv.Definition{
		Name: "Device bridging capability", Parse: parseDeviceBridgingCapability, Length: lengthDeviceBridgingCapability,
		Forge: forgeDeviceBridgingCapability, Print: printDeviceBridgingCapability, Compare: compareDeviceBridgingCapability,
	}
	t[TypeNon1905NeighborDeviceList] = tlv.Definition{
		Name: "Non-1905 neighbor device list", Parse: parseNon1905NeighborDeviceList, Length: lengthNon1905NeighborDeviceList,
		Forge: forgeNon1905NeighborDeviceList, Print: printNon1905NeighborDeviceList, Compare: compareNon1905NeighborDeviceList,
		Aggregate: aggregateNon1905NeighborDeviceList,
	}
	t[TypeNeighborDeviceList] = tlv.Definition{
		Name: "Neighbor device list", Parse: parseNeighborDeviceList, Length: lengthNeighborDeviceList,
		Forge: forgeNeighborDeviceList, Print: printNeighborDeviceList, Compare: compareNeighborDeviceList,
		Aggregate: aggregateNeighborDeviceList,
	}
	t[TypeLinkMetricQuery] = tlv.Definition{
		Name: "Link metric query", Parse: parseLinkMetricQuery, Length: lengthLinkMetricQuery,
		Forge: forgeLinkMetricQuery, Print: printLinkMetricQuery, Compare: compareLinkMetricQuery,
	}
	t[TypeTransmitterLinkMetric] = tlv.Definition{
		Name: "Transmitter link metric", Parse: parseTransmitterLinkMetric, Length: lengthTransmitterLinkMetric,
		Forge: forgeTransmitterLinkMetric, Print: printTransmitterLinkMetric, Compare: compareTransmitterLinkMetric,
	}
	t[TypeReceiverLinkMetric] = tlv.Definition{
		Name: "Receiver link metric", Parse: parseReceiverLinkMetric, Length: lengthReceiverLinkMetric,
		Forge: forgeReceiverLinkMetric, Print: printReceiverLinkMetric, Compare: compareReceiverLinkMetric,
	}
	t[TypeSearchedRole] = tlv.Definition{
		Name: "Searched role", Parse: parseSearchedRole, Length: lengthSearchedRole,
		Forge: forgeSearchedRole, Print: printSearchedRole, Compare: compareSearchedRole,
	}
	t[TypeAutoconfigFrequencyBand] = tlv.Definition{
		Name: "Autoconfig frequency band", Parse: parseAutoconfigFrequencyBand, Length: lengthAutoconfigFrequencyBand,
		Forge: forgeAutoconfigFrequencyBand, Print: printAutoconfigFrequencyBand, Compare: compareAutoconfigFrequencyBand,
	}
	t[TypeSupportedRole] = tlv.Definition{
		Name: "Supported role", Parse: parseSupportedRole, Length: lengthSupportedRole,
		Forge: forgeSupportedRole, Print: printSupportedRole, Compare: compareSupportedRole,
	}
	t[TypeSupportedFrequencyBand] = tlv.Definition{
		Name: "Supported frequency band", Parse: parseSupportedFrequencyBand, Length: lengthSupportedFrequencyBand,
		Forge: forgeSupportedFrequencyBand, Print: printSupportedFrequencyBand, Compare: compareSupportedFrequencyBand,
	}
	t[TypeWSC] = tlv.Definition{
		Name: "WSC", Parse: parseWSC, Length: lengthWSC,
		Forge: forgeWSC, Print: printWSC, Compare: compareWSC,
	}
	t[TypePushButtonEventNotification] = tlv.Definition{
		Name: "Push button event notification", Parse: parsePushButtonEventNotification, Length: lengthPushButtonEventNotification,
		Forge: forgePushButtonEventNotification, Print: printPushButtonEventNotification, Compare: comparePushButtonEventNotification,
	}
	t[TypePushButtonJoinNotification] = tlv.Definition{
		Name: "Push button join notification", Parse: parsePushButtonJoinNotification, Length: lengthPushButtonJoinNotification,
		Forge: forgePushButtonJoinNotification, Print: printPushButtonJoinNotification, Compare: comparePushButtonJoinNotification,
	}
	t[TypeSearchedService] = tlv.Definition{
		Name: "Searched service", Parse: parseSearchedService, Length: lengthSearchedService,
		Forge: forgeSearchedService, Print: printSearchedService, Compare: compareSearchedService,
	}
	t[TypeSupportedService] = tlv.Definition{
		Name: "Supported service", Parse: parseSupportedService, Length: lengthSupportedService,
		Forge: forgeSupportedService, Print: printSupportedService, Compare: compareSupportedService,
	}
	t[TypeControlURL] = tlv.Definition{
		Name: "Control URL", Parse: parseControlURL, Length: lengthControlURL,
		Forge: forgeControlURL, Print: printControlURL, Compare: compareControlURL,
	}
	t[TypeIPv4] = tlv.Definition{
		Name: "IPv4", Parse: parseIPv4, Length: lengthIPv4,
		Forge: forgeIPv4, Print: printIPv4, Compare: compareIPv4,
	}
	t[TypeIPv6] = tlv.Definition{
		Name: "IPv6", Parse: parseIPv6, Length: lengthIPv6,
		Forge: forgeIPv6, Print: printIPv6, Compare: compareIPv6,
	}
	t[TypePushButtonGenericPHYEventNotif] = tlv.Definition{
		Name: "Push button generic PHY event notification", Parse: parsePushButtonGenericPHYEventNotification,
		Length: lengthPushButtonGenericPHYEventNotification, Forge: forgePushButtonGenericPHYEventNotification,
		Print: printPushButtonGenericPHYEventNotification, Compare: comparePushButtonGenericPHYEventNotification,
	}
	t[TypeDeviceIdentification] = tlv.Definition{
		Name: "Device identification", Parse: parseDeviceIdentification, Length: lengthDeviceIdentification,
		Forge: forgeDeviceIdentification, Print: printDeviceIdentification, Compare: compareDeviceIdentification,
	}
	t[TypeProfileVersion] = tlv.Definition{
		Name: "Profile version", Parse: parseProfileVersion, Length: lengthProfileVersion,
		Forge: forgeProfileVersion, Print: printProfileVersion, Compare: compareProfileVersion,
	}
	t[TypePowerOffInterface] = tlv.Definition{
		Name: "Power off interface", Parse: parsePowerOffInterface, Length: lengthPowerOffInterface,
		Forge: forgePowerOffInterface, Print: printPowerOffInterface, Compare: comparePowerOffInterface,
	}
	t[TypeInterfacePowerChangeInformation] = tlv.Definition{
		Name: "Interface power change information", Parse: parseInterfacePowerChangeInformation,
		Length: lengthInterfacePowerChangeInformation, Forge: forgeInterfacePowerChangeInformation,
		Print: printInterfacePowerChangeInformation, Compare: compareInterfacePowerChangeInformation,
	}
	t[TypeInterfacePowerChangeStatus] = tlv.Definition{
		Name: "Interface power change status", Parse: parseInterfacePowerChangeStatus,
		Length: lengthInterfacePowerChangeStatus, Forge: forgeInterfacePowerChangeStatus,
		Print: printInterfacePowerChangeStatus, Compare: compareInterfacePowerChangeStatus,
	}
	t[TypeGenericPHYDeviceInformation] = tlv.Definition{
		Name: "Generic PHY device information", Parse: parseGenericPHYDeviceInformation,
		Length: lengthGenericPHYDeviceInformation, Forge: forgeGenericPHYDeviceInformation,
		Print: printGenericPHYDeviceInformation, Compare: compareGenericPHYDeviceInformation,
	}

	return t
}
