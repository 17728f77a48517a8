package command

import (
	"github.com/sirupsen/logrus"

	"github.com/coupergateway/base64url/config"
	"github.com/coupergateway/base64url/utils"
)

var _ Cmd = &Version{}

type Version struct {
	streams IO
}

func NewVersion(streams IO) *Version {
	return &Version{streams: streams}
}

func (v Version) Execute(_ Args, _ *config.Settings, _ *logrus.Entry) error {
	return writeOutput(v.streams.Out, utils.VersionInfo(), true)
}

func (v Version) Usage() string {
	return "Usage of version:\n  version	Print current version and build information."
}
