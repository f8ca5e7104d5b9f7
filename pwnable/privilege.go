package pwnable

import (
	"os/user"
	"strconv"
)

// AccountIdentity is the resolved record for a named POSIX account.
type AccountIdentity struct {
	Name string
	UID  uint32
	GID  uint32
	Home string
}

// ResolveAccount looks up name in the system account database. This is the
// one place the implementation reaches for the standard library instead of
// a third-party dependency: os/user is the Go runtime's own binding to
// getpwnam(3)/NSS, and nothing in the reference corpus replaces it.
func ResolveAccount(name string) (AccountIdentity, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return AccountIdentity{}, wrap(ErrUnknownAccount, err)
	}

	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return AccountIdentity{}, wrap(ErrUnknownAccount, err)
	}

	gid, err := strconv.ParseUint(u.Gid, 10, 32)
	if err != nil {
		return AccountIdentity{}, wrap(ErrUnknownAccount, err)
	}

	return AccountIdentity{
		Name: u.Username,
		UID:  uint32(uid),
		GID:  uint32(gid),
		Home: u.HomeDir,
	}, nil
}
