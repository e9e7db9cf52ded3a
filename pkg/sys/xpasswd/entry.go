package xpasswd

import (
	"fmt"
	"strconv"
	"strings"
)

// User 是 passwd(5) 的一条记录。密码字段有意不暴露：现代系统中
// 它恒为占位符，真实凭据在 shadow 数据库里。
type User struct {
	Name  string
	UID   int
	GID   int
	Gecos string
	Home  string
	Shell string
}

func (u User) String() string {
	return fmt.Sprintf("%s(uid=%d gid=%d)", u.Name, u.UID, u.GID)
}

// Group 是 group(5) 的一条记录。
type Group struct {
	Name    string
	GID     int
	Members []string
}

func (g Group) String() string {
	return fmt.Sprintf("%s(gid=%d)", g.Name, g.GID)
}

// passwd(5): name:passwd:uid:gid:gecos:home:shell
const passwdFields = 7

// group(5): name:passwd:gid:members
const groupFields = 4

func parseUser(line string) (User, error) {
	fields := strings.Split(line, ":")
	if len(fields) != passwdFields {
		return User{}, fmt.Errorf("%w: %d fields, want %d",
			ErrMalformedEntry, len(fields), passwdFields)
	}
	uid, err := strconv.Atoi(fields[2])
	if err != nil {
		return User{}, fmt.Errorf("%w: uid %q is not a number", ErrMalformedEntry, fields[2])
	}
	gid, err := strconv.Atoi(fields[3])
	if err != nil {
		return User{}, fmt.Errorf("%w: gid %q is not a number", ErrMalformedEntry, fields[3])
	}
	return User{
		Name:  fields[0],
		UID:   uid,
		GID:   gid,
		Gecos: fields[4],
		Home:  fields[5],
		Shell: fields[6],
	}, nil
}

func parseGroup(line string) (Group, error) {
	fields := strings.Split(line, ":")
	if len(fields) != groupFields {
		return Group{}, fmt.Errorf("%w: %d fields, want %d",
			ErrMalformedEntry, len(fields), groupFields)
	}
	gid, err := strconv.Atoi(fields[2])
	if err != nil {
		return Group{}, fmt.Errorf("%w: gid %q is not a number", ErrMalformedEntry, fields[2])
	}
	var members []string
	if fields[3] != "" {
		members = strings.Split(fields[3], ",")
	}
	return Group{Name: fields[0], GID: gid, Members: members}, nil
}
