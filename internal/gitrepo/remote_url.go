package gitrepo

import (
	"fmt"
	"strings"
)

const (
	sshProtocolPrefixConstant       = "ssh://"
	httpsProtocolPrefixConstant     = "https://"
	httpProtocolPrefixConstant      = "http://"
	gitUserPrefixConstant           = "git@"
	sshUserDelimiterConstant        = "@"
	sshPathDelimiterConstant        = ":"
	pathSeparatorConstant           = "/"
	gitSuffixConstant               = ".git"
	remoteURLErrorTemplateConstant  = "%s: %s"
	invalidRemoteURLMessageConstant = "invalid remote url"
	unknownProtocolMessageConstant  = "unsupported remote protocol"
)

// RemoteProtocol enumerates supported git remote protocols.
type RemoteProtocol string

// Supported remote protocols.
const (
	RemoteProtocolSSH   RemoteProtocol = RemoteProtocol("ssh")
	RemoteProtocolHTTPS RemoteProtocol = RemoteProtocol("https")
	RemoteProtocolHTTP  RemoteProtocol = RemoteProtocol("http")
)

// RemoteURL represents a structured git remote URL. User is only meaningful
// for SSH remotes and stays empty for web protocols.
type RemoteURL struct {
	Protocol   RemoteProtocol
	User       string
	Host       string
	Owner      string
	Repository string
}

// RemoteURLParseError indicates a remote string could not be parsed.
type RemoteURLParseError struct {
	Input   string
	Message string
}

// Error describes the parse failure.
func (parseError RemoteURLParseError) Error() string {
	return fmt.Sprintf(remoteURLErrorTemplateConstant, parseError.Input, parseError.Message)
}

// UnsupportedProtocolError indicates the provided protocol cannot be formatted.
type UnsupportedProtocolError struct {
	Protocol RemoteProtocol
}

// Error describes the unsupported protocol.
func (protocolError UnsupportedProtocolError) Error() string {
	return fmt.Sprintf(remoteURLErrorTemplateConstant, protocolError.Protocol, unknownProtocolMessageConstant)
}

// ParseRemoteURL converts a textual remote URL into a structured
// representation. Accepted shapes are scp-style (git@host:owner/repo),
// ssh:// with or without a user, and https:// or http:// web remotes.
func ParseRemoteURL(remote string) (RemoteURL, error) {
	trimmedRemote := strings.TrimSpace(remote)
	switch {
	case len(trimmedRemote) == 0:
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: requiredValueMessageConstant}
	case strings.HasPrefix(trimmedRemote, sshProtocolPrefixConstant):
		return parseSSHRemote(strings.TrimPrefix(trimmedRemote, sshProtocolPrefixConstant))
	case strings.HasPrefix(trimmedRemote, gitUserPrefixConstant):
		return parseSSHRemote(trimmedRemote)
	case strings.HasPrefix(trimmedRemote, httpsProtocolPrefixConstant):
		return parseWebRemote(RemoteProtocolHTTPS, strings.TrimPrefix(trimmedRemote, httpsProtocolPrefixConstant))
	case strings.HasPrefix(trimmedRemote, httpProtocolPrefixConstant):
		return parseWebRemote(RemoteProtocolHTTP, strings.TrimPrefix(trimmedRemote, httpProtocolPrefixConstant))
	default:
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}
}

func parseSSHRemote(remote string) (RemoteURL, error) {
	user := ""
	hostAndPath := remote
	if userSplitIndex := strings.Index(remote, sshUserDelimiterConstant); userSplitIndex != -1 {
		user = remote[:userSplitIndex]
		hostAndPath = remote[userSplitIndex+1:]
	}

	hostSplitIndex := strings.Index(hostAndPath, sshPathDelimiterConstant)
	if hostSplitIndex == -1 {
		hostSplitIndex = strings.Index(hostAndPath, pathSeparatorConstant)
	}
	if hostSplitIndex == -1 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}

	host := hostAndPath[:hostSplitIndex]
	pathSegments := strings.Split(hostAndPath[hostSplitIndex+1:], pathSeparatorConstant)
	if len(pathSegments) != 2 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}
	repository, repositoryError := normalizeRepositoryName(pathSegments[1])
	if repositoryError != nil {
		return RemoteURL{}, repositoryError
	}
	return RemoteURL{Protocol: RemoteProtocolSSH, User: user, Host: host, Owner: pathSegments[0], Repository: repository}, nil
}

func parseWebRemote(protocol RemoteProtocol, remote string) (RemoteURL, error) {
	pathComponents := strings.Split(remote, pathSeparatorConstant)
	if len(pathComponents) < 3 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}
	repository, repositoryError := normalizeRepositoryName(strings.Join(pathComponents[2:], pathSeparatorConstant))
	if repositoryError != nil {
		return RemoteURL{}, repositoryError
	}
	return RemoteURL{Protocol: protocol, Host: pathComponents[0], Owner: pathComponents[1], Repository: repository}, nil
}

func normalizeRepositoryName(repository string) (string, error) {
	trimmedRepository := strings.TrimSuffix(strings.TrimSpace(repository), gitSuffixConstant)
	if len(trimmedRepository) == 0 {
		return "", RemoteURLParseError{Input: repository, Message: invalidRemoteURLMessageConstant}
	}
	return trimmedRepository, nil
}

// FormatRemoteURL creates a canonical textual remote URL from a structured
// representation. SSH remotes with a user render in scp style; user-less SSH
// remotes render with the ssh:// scheme.
func FormatRemoteURL(remote RemoteURL) (string, error) {
	for _, requiredField := range []string{remote.Host, remote.Owner, remote.Repository} {
		if len(strings.TrimSpace(requiredField)) == 0 {
			return "", RemoteURLParseError{Input: requiredField, Message: requiredValueMessageConstant}
		}
	}

	switch remote.Protocol {
	case RemoteProtocolSSH:
		if len(strings.TrimSpace(remote.User)) == 0 {
			return fmt.Sprintf("%s%s%s%s%s%s%s", sshProtocolPrefixConstant, remote.Host, pathSeparatorConstant, remote.Owner, pathSeparatorConstant, remote.Repository, gitSuffixConstant), nil
		}
		return fmt.Sprintf("%s%s%s%s%s%s%s%s", remote.User, sshUserDelimiterConstant, remote.Host, sshPathDelimiterConstant, remote.Owner, pathSeparatorConstant, remote.Repository, gitSuffixConstant), nil
	case RemoteProtocolHTTPS:
		return fmt.Sprintf("%s%s%s%s%s%s%s", httpsProtocolPrefixConstant, remote.Host, pathSeparatorConstant, remote.Owner, pathSeparatorConstant, remote.Repository, gitSuffixConstant), nil
	case RemoteProtocolHTTP:
		return fmt.Sprintf("%s%s%s%s%s%s%s", httpProtocolPrefixConstant, remote.Host, pathSeparatorConstant, remote.Owner, pathSeparatorConstant, remote.Repository, gitSuffixConstant), nil
	default:
		return "", UnsupportedProtocolError{Protocol: remote.Protocol}
	}
}
