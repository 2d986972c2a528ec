package twilio

import (
	"strconv"

	"github.com/twilio/twilio-go/twiml"
)

const (
	// ContentType is the media type Twilio expects for call-control documents.
	ContentType = "application/xml"

	connectFallbackMessage = "I'm sorry, I'm having trouble connecting. Please try again later."
	apologyMessage         = "I'm sorry, I'm experiencing technical difficulties. Please call back later."

	apologyDocument = `<?xml version="1.0" encoding="UTF-8"?><Response><Say>I&#39;m sorry, I&#39;m experiencing technical difficulties. Please call back later.</Say><Hangup></Hangup></Response>`
)

// ConnectStream renders the document that bridges a call to the media relay at streamURL.
// The relay receives the provider call id and the call log id as stream parameters. If the
// stream cannot be established the caller hears a short fallback message.
func ConnectStream(streamURL, callSID string, callLogID int64) (string, error) {
	stream := twiml.VoiceStream{
		Name:  "answering-agent",
		Url:   streamURL,
		Track: "both_tracks",
		InnerElements: []twiml.Element{
			twiml.VoiceParameter{Name: "call_sid", Value: callSID},
			twiml.VoiceParameter{Name: "call_log_id", Value: strconv.FormatInt(callLogID, 10)},
		},
	}
	connect := twiml.VoiceConnect{
		InnerElements: []twiml.Element{stream},
	}
	say := &twiml.VoiceSay{
		Message: connectFallbackMessage,
	}

	return twiml.Voice([]twiml.Element{connect, say})
}

// Apology renders the document played when the call cannot be handled. It never fails.
func Apology() string {
	say := &twiml.VoiceSay{
		Message: apologyMessage,
	}
	doc, err := twiml.Voice([]twiml.Element{say, &twiml.VoiceHangup{}})
	if err != nil {
		return apologyDocument
	}
	return doc
}
