package pipeline

import "github.com/gabriel-vasile/mimetype"

// MIMEDetector probes a file's media type from its leading bytes.
type MIMEDetector struct{}

func NewMIMEDetector() *MIMEDetector {
	return &MIMEDetector{}
}

func (MIMEDetector) DetectType(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}

	return mtype.String(), nil
}
