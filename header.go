package smpp

import "fmt"

// HeaderLength is the size of the fixed SMPP PDU header.
const HeaderLength = 16

// CommandID identifies the PDU type carried in a header.
type CommandID uint32

const responseBit CommandID = 0x80000000

const (
	CommandGenericNack         CommandID = 0x80000000
	CommandBindReceiver        CommandID = 0x00000001
	CommandBindReceiverResp    CommandID = 0x80000001
	CommandBindTransmitter     CommandID = 0x00000002
	CommandBindTransmitterResp CommandID = 0x80000002
	CommandQuerySM             CommandID = 0x00000003
	CommandQuerySMResp         CommandID = 0x80000003
	CommandSubmitSM            CommandID = 0x00000004
	CommandSubmitSMResp        CommandID = 0x80000004
	CommandDeliverSM           CommandID = 0x00000005
	CommandDeliverSMResp       CommandID = 0x80000005
	CommandUnbind              CommandID = 0x00000006
	CommandUnbindResp          CommandID = 0x80000006
	CommandReplaceSM           CommandID = 0x00000007
	CommandReplaceSMResp       CommandID = 0x80000007
	CommandCancelSM            CommandID = 0x00000008
	CommandCancelSMResp        CommandID = 0x80000008
	CommandBindTransceiver     CommandID = 0x00000009
	CommandBindTransceiverResp CommandID = 0x80000009
	CommandOutbind             CommandID = 0x0000000b
	CommandEnquireLink         CommandID = 0x00000015
	CommandEnquireLinkResp     CommandID = 0x80000015
	CommandSubmitMulti         CommandID = 0x00000021
	CommandSubmitMultiResp     CommandID = 0x80000021
	CommandAlertNotification   CommandID = 0x00000102
	CommandDataSM              CommandID = 0x00000103
	CommandDataSMResp          CommandID = 0x80000103
)

var commandNames = map[CommandID]string{
	CommandGenericNack:         "generic_nack",
	CommandBindReceiver:        "bind_receiver",
	CommandBindReceiverResp:    "bind_receiver_resp",
	CommandBindTransmitter:     "bind_transmitter",
	CommandBindTransmitterResp: "bind_transmitter_resp",
	CommandQuerySM:             "query_sm",
	CommandQuerySMResp:         "query_sm_resp",
	CommandSubmitSM:            "submit_sm",
	CommandSubmitSMResp:        "submit_sm_resp",
	CommandDeliverSM:           "deliver_sm",
	CommandDeliverSMResp:       "deliver_sm_resp",
	CommandUnbind:              "unbind",
	CommandUnbindResp:          "unbind_resp",
	CommandReplaceSM:           "replace_sm",
	CommandReplaceSMResp:       "replace_sm_resp",
	CommandCancelSM:            "cancel_sm",
	CommandCancelSMResp:        "cancel_sm_resp",
	CommandBindTransceiver:     "bind_transceiver",
	CommandBindTransceiverResp: "bind_transceiver_resp",
	CommandOutbind:             "outbind",
	CommandEnquireLink:         "enquire_link",
	CommandEnquireLinkResp:     "enquire_link_resp",
	CommandSubmitMulti:         "submit_multi",
	CommandSubmitMultiResp:     "submit_multi_resp",
	CommandAlertNotification:   "alert_notification",
	CommandDataSM:              "data_sm",
	CommandDataSMResp:          "data_sm_resp",
}

func (c CommandID) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command_0x%08x", uint32(c))
}

// IsResponse reports whether c is the response half of a request/response pair.
func (c CommandID) IsResponse() bool {
	return c&responseBit != 0
}

// Header is the fixed header that starts every SMPP PDU.
type Header struct {
	CommandLength  uint32
	CommandID      CommandID
	CommandStatus  uint32
	SequenceNumber uint32
}

func (h *Header) Decode(pd PacketDecoder) (err error) {
	if h.CommandLength, err = pd.ReadUInt4(); err != nil {
		return err
	}
	id, err := pd.ReadUInt4()
	if err != nil {
		return err
	}
	h.CommandID = CommandID(id)
	if h.CommandStatus, err = pd.ReadUInt4(); err != nil {
		return err
	}
	if h.SequenceNumber, err = pd.ReadUInt4(); err != nil {
		return err
	}
	return nil
}
