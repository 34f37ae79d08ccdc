package smartcast

// Pairing is a three step exchange: begin returns a challenge type and a
// pairing token, the human reads a pin off the device screen, and finish
// trades (challenge type, token, pin) for the bearer auth token used on
// every authenticated command afterwards. No state is kept here between
// steps; the caller carries the challenge values forward. Out-of-order
// steps are not rejected locally — the device's own rejection surfaces as
// an absent result through the dispatcher.

// PairChallenge is the device's answer to a begin-pair request.
type PairChallenge struct {
	ChallengeType int
	Token         int
}

// PairCredentials is the device's answer to a successful finish-pair.
type PairCredentials struct {
	AuthToken string
}

type beginPairBody struct {
	DeviceID   string `json:"DEVICE_ID"`
	DeviceName string `json:"DEVICE_NAME"`
}

type beginPairCommand struct {
	putCommand
}

func newBeginPairCommand(class DeviceClass, deviceID, deviceName string) beginPairCommand {
	return beginPairCommand{putCommand{
		url:  endpoint(class, epBeginPair),
		body: beginPairBody{DeviceID: deviceID, DeviceName: deviceName},
	}}
}

func (c beginPairCommand) parse(envelope map[string]any) (any, error) {
	item := getCIMap(envelope, "item")
	if item == nil {
		return nil, nil
	}

	challenge := &PairChallenge{}
	if ct := getCIInt(item, "challenge_type"); ct != nil {
		challenge.ChallengeType = *ct
	}
	if token := getCIInt(item, "pairing_req_token"); token != nil {
		challenge.Token = *token
	}
	return challenge, nil
}

type finishPairBody struct {
	DeviceID      string `json:"DEVICE_ID"`
	ChallengeType int    `json:"CHALLENGE_TYPE"`
	PairingToken  int    `json:"PAIRING_REQ_TOKEN"`
	Pin           string `json:"RESPONSE_VALUE"`
}

type finishPairCommand struct {
	putCommand
}

func newFinishPairCommand(class DeviceClass, deviceID string, challengeType, token int, pin string) finishPairCommand {
	return finishPairCommand{putCommand{
		url: endpoint(class, epFinishPair),
		body: finishPairBody{
			DeviceID:      deviceID,
			ChallengeType: challengeType,
			PairingToken:  token,
			Pin:           pin,
		},
	}}
}

func (c finishPairCommand) parse(envelope map[string]any) (any, error) {
	item := getCIMap(envelope, "item")
	if item == nil {
		return nil, nil
	}
	return &PairCredentials{AuthToken: getCIString(item, "auth_token")}, nil
}

type cancelPairCommand struct {
	putCommand
}

func newCancelPairCommand(class DeviceClass, deviceID, deviceName string) cancelPairCommand {
	return cancelPairCommand{putCommand{
		url:  endpoint(class, epCancelPair),
		body: beginPairBody{DeviceID: deviceID, DeviceName: deviceName},
	}}
}
