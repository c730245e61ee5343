package dict

import "github.com/hsdfat8/diam-core/models_base"

func init() {
	Default.Add(
		// RFC 6733 base protocol
		&Definition{Name: "User-Name", Code: UserName, Type: models_base.UTF8StringType, Must: true},
		&Definition{Name: "Class", Code: Class, Type: models_base.OctetStringType, Must: true},
		&Definition{Name: "Framed-IP-Address", Code: FramedIPAddress, Type: models_base.IPv4Type, Must: true},
		&Definition{Name: "Acct-Session-Id", Code: AcctSessionID, Type: models_base.OctetStringType, Must: true},
		&Definition{Name: "Event-Timestamp", Code: EventTimestamp, Type: models_base.TimeType, Must: true},
		&Definition{Name: "Acct-Interim-Interval", Code: AcctInterimInterval, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Host-IP-Address", Code: HostIPAddress, Type: models_base.AddressType, Must: true},
		&Definition{Name: "Auth-Application-Id", Code: AuthApplicationID, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Acct-Application-Id", Code: AcctApplicationID, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Vendor-Specific-Application-Id", Code: VendorSpecificApplicationID, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "Redirect-Host-Usage", Code: RedirectHostUsage, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Redirect-Max-Cache-Time", Code: RedirectMaxCacheTime, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Session-Id", Code: SessionID, Type: models_base.UTF8StringType, Must: true},
		&Definition{Name: "Origin-Host", Code: OriginHost, Type: models_base.DiameterIdentityType, Must: true},
		&Definition{Name: "Supported-Vendor-Id", Code: SupportedVendorID, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Vendor-Id", Code: VendorID, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Firmware-Revision", Code: FirmwareRevision, Type: models_base.Unsigned32Type},
		&Definition{Name: "Result-Code", Code: ResultCode, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Product-Name", Code: ProductName, Type: models_base.UTF8StringType},
		&Definition{Name: "Session-Binding", Code: SessionBinding, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Session-Server-Failover", Code: SessionServerFailover, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Multi-Round-Time-Out", Code: MultiRoundTimeOut, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Disconnect-Cause", Code: DisconnectCause, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Auth-Request-Type", Code: AuthRequestType, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Auth-Grace-Period", Code: AuthGracePeriod, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Auth-Session-State", Code: AuthSessionState, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Origin-State-Id", Code: OriginStateID, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Failed-AVP", Code: FailedAVP, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "Proxy-Host", Code: ProxyHost, Type: models_base.DiameterIdentityType, Must: true},
		&Definition{Name: "Error-Message", Code: ErrorMessage, Type: models_base.UTF8StringType},
		&Definition{Name: "Route-Record", Code: RouteRecord, Type: models_base.DiameterIdentityType, Must: true},
		&Definition{Name: "Destination-Realm", Code: DestinationRealm, Type: models_base.DiameterIdentityType, Must: true},
		&Definition{Name: "Proxy-Info", Code: ProxyInfo, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "Re-Auth-Request-Type", Code: ReAuthRequestType, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Accounting-Sub-Session-Id", Code: AccountingSubSessionID, Type: models_base.Unsigned64Type, Must: true},
		&Definition{Name: "Redirect-Host", Code: RedirectHost, Type: models_base.DiameterURIType, Must: true},
		&Definition{Name: "Destination-Host", Code: DestinationHost, Type: models_base.DiameterIdentityType, Must: true},
		&Definition{Name: "Error-Reporting-Host", Code: ErrorReportingHost, Type: models_base.DiameterIdentityType},
		&Definition{Name: "Termination-Cause", Code: TerminationCause, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Origin-Realm", Code: OriginRealm, Type: models_base.DiameterIdentityType, Must: true},
		&Definition{Name: "Experimental-Result", Code: ExperimentalResult, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "Experimental-Result-Code", Code: ExperimentalResultCode, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Inband-Security-Id", Code: InbandSecurityID, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Accounting-Record-Type", Code: AccountingRecordType, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Accounting-Realtime-Required", Code: AccountingRealtimeRequired, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Accounting-Record-Number", Code: AccountingRecordNumber, Type: models_base.Unsigned32Type, Must: true},

		// RFC 8506 credit-control
		&Definition{Name: "CC-Correlation-Id", Code: CCCorrelationID, Type: models_base.OctetStringType},
		&Definition{Name: "CC-Input-Octets", Code: CCInputOctets, Type: models_base.Unsigned64Type, Must: true},
		&Definition{Name: "CC-Money", Code: CCMoney, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "CC-Output-Octets", Code: CCOutputOctets, Type: models_base.Unsigned64Type, Must: true},
		&Definition{Name: "CC-Request-Number", Code: CCRequestNumber, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "CC-Request-Type", Code: CCRequestType, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "CC-Service-Specific-Units", Code: CCServiceSpecificUnits, Type: models_base.Unsigned64Type, Must: true},
		&Definition{Name: "CC-Session-Failover", Code: CCSessionFailover, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "CC-Sub-Session-Id", Code: CCSubSessionID, Type: models_base.Unsigned64Type, Must: true},
		&Definition{Name: "CC-Time", Code: CCTime, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "CC-Total-Octets", Code: CCTotalOctets, Type: models_base.Unsigned64Type, Must: true},
		&Definition{Name: "CC-Unit-Type", Code: CCUnitType, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Check-Balance-Result", Code: CheckBalanceResult, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Cost-Information", Code: CostInformation, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "Cost-Unit", Code: CostUnit, Type: models_base.UTF8StringType, Must: true},
		&Definition{Name: "Currency-Code", Code: CurrencyCode, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Credit-Control-Failure-Handling", Code: CreditControlFailureHandling, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Final-Unit-Action", Code: FinalUnitAction, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Final-Unit-Indication", Code: FinalUnitIndication, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "Granted-Service-Unit", Code: GrantedServiceUnit, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "Rating-Group", Code: RatingGroup, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Requested-Action", Code: RequestedAction, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Requested-Service-Unit", Code: RequestedServiceUnit, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "Service-Context-Id", Code: ServiceContextID, Type: models_base.UTF8StringType, Must: true},
		&Definition{Name: "Service-Identifier", Code: ServiceIdentifier, Type: models_base.Unsigned32Type, Must: true},
		&Definition{Name: "Subscription-Id", Code: SubscriptionID, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "Subscription-Id-Data", Code: SubscriptionIDData, Type: models_base.UTF8StringType, Must: true},
		&Definition{Name: "Subscription-Id-Type", Code: SubscriptionIDType, Type: models_base.EnumeratedType, Must: true},
		&Definition{Name: "Tariff-Time-Change", Code: TariffTimeChange, Type: models_base.TimeType, Must: true},
		&Definition{Name: "Used-Service-Unit", Code: UsedServiceUnit, Type: models_base.GroupedType, Must: true},
		&Definition{Name: "User-Equipment-Info", Code: UserEquipmentInfo, Type: models_base.GroupedType},
		&Definition{Name: "User-Equipment-Info-Type", Code: UserEquipmentInfoType, Type: models_base.EnumeratedType},
		&Definition{Name: "User-Equipment-Info-Value", Code: UserEquipmentInfoValue, Type: models_base.OctetStringType},
		&Definition{Name: "Validity-Time", Code: ValidityTime, Type: models_base.Unsigned32Type, Must: true},

		// 3GPP vendor AVPs
		&Definition{Name: "3GPP-IMSI", Code: TGPPIMSI, VendorID: Vendor3GPP, Type: models_base.UTF8StringType},
		&Definition{Name: "3GPP-Charging-Characteristics", Code: TGPPChargingCharacteristics, VendorID: Vendor3GPP, Type: models_base.UTF8StringType},
		&Definition{Name: "3GPP-SGSN-MCC-MNC", Code: TGPPSGSNMCCMNC, VendorID: Vendor3GPP, Type: models_base.UTF8StringType},
		&Definition{Name: "3GPP-RAT-Type", Code: TGPPRATType, VendorID: Vendor3GPP, Type: models_base.OctetStringType},
		&Definition{Name: "3GPP-User-Location-Info", Code: TGPPUserLocationInfo, VendorID: Vendor3GPP, Type: models_base.OctetStringType},
		&Definition{Name: "3GPP-MS-TimeZone", Code: TGPPMSTimeZone, VendorID: Vendor3GPP, Type: models_base.OctetStringType},
		&Definition{Name: "Visited-PLMN-Id", Code: VisitedPLMNID, VendorID: Vendor3GPP, Type: models_base.OctetStringType, Must: true},
	)
}
