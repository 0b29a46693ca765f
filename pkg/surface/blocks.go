package surface

// Settings keys of the video player block.
const (
	FieldDisplayName     = "display_name"
	FieldVideoURL        = "video_url"
	FieldVerificationKey = "verification_key"
	FieldProtectionType  = "protection_type"
	FieldTokenIssuer     = "token_issuer"
	FieldTokenScope      = "token_scope"
	FieldCaptions        = "captions"
	FieldTranscriptURL   = "transcript_url"
	FieldDownloadURL     = "download_url"
)

// VideoPlayerDescriptor returns the editable fields of the streaming video
// player block with their host defaults, all unset.
func VideoPlayerDescriptor() Descriptor {
	return Descriptor{
		Block: "video_player",
		Fields: []FieldSpec{
			{
				Name:    FieldDisplayName,
				Label:   "Display Name",
				Help:    "Enter the name that students see for this component.",
				Cast:    "string",
				Default: "Azure Media Services Video Player",
			},
			{
				Name:  FieldVideoURL,
				Label: "Video Url",
				Help:  "Enter the URL to your published video.",
				Cast:  "string",
			},
			{
				Name:  FieldVerificationKey,
				Label: "Verification Key",
				Help:  "Enter the Base64 encoded verification key.",
				Cast:  "string",
			},
			{
				Name:  FieldProtectionType,
				Label: "Protection Type",
				Help:  "Either blank (unprotected), 'AES', or 'PlayReady'.",
				Cast:  "string",
			},
			{
				Name:    FieldTokenIssuer,
				Label:   "Token Issuer",
				Cast:    "string",
				Default: "http://openedx.microsoft.com/",
			},
			{
				Name:    FieldTokenScope,
				Label:   "Token Scope",
				Cast:    "string",
				Default: "urn:xblock-azure-media-services",
			},
			{
				Name:    FieldCaptions,
				Label:   "Captions",
				Help:    "A list of caption definitions.",
				Cast:    "list",
				Default: "[]",
			},
			{
				Name:  FieldTranscriptURL,
				Label: "Transcript URL",
				Cast:  "string",
			},
			{
				Name:  FieldDownloadURL,
				Label: "Video Download URL",
				Cast:  "string",
			},
		},
	}
}
