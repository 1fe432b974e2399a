// Package repofiles manipulates files and commits in a remote GitHub
// repository through its REST API: reading file or directory contents,
// creating or updating a single file, and pushing a batch of files as one
// atomic commit.
package repofiles

// FileContent is a repo-relative path paired with raw text content to push.
type FileContent struct {
	Path    string
	Content string
}

// FilePath maps a repo-relative destination to a local filesystem location.
type FilePath struct {
	Path     string
	Filepath string
}

// RemoteFile describes a single file read from the repository. Content is
// already decoded from base64 to text.
type RemoteFile struct {
	Path    string
	SHA     string
	Type    string
	Content string
}

// DirEntry is one entry of a directory listing. Directory entries never carry
// content.
type DirEntry struct {
	Path string
	SHA  string
	Type string
	Size int
}

// RemoteContent is the result of a contents read: exactly one of File or
// Entries is set, depending on whether the path named a file or a directory.
type RemoteContent struct {
	File    *RemoteFile
	Entries []DirEntry
}

// CommitInfo identifies a commit created by a write operation.
type CommitInfo struct {
	SHA     string
	Message string
	TreeSHA string
	Parents []string
}

// RefInfo is a branch reference and the commit sha it points at.
type RefInfo struct {
	Ref string
	SHA string
}

// UpdateFileResult is the outcome of CreateOrUpdateFile: the new file
// descriptor (nil when the API returns none) and the commit that wrote it.
type UpdateFileResult struct {
	Content *RemoteFile
	Commit  CommitInfo
}
