package xpasswd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// 数据库打开函数以包级变量持有，便于测试替换。
// 注意：mock 测试不可使用 t.Parallel()，替换包级变量会引发竞态。
var (
	openPasswd = func() (io.ReadCloser, error) { return os.Open("/etc/passwd") }
	openGroup  = func() (io.ReadCloser, error) { return os.Open("/etc/group") }
)

// walkMu 把每次数据库遍历做成进程级临界区：底层游标是共享的，
// 交错遍历会互相破坏位置。
var walkMu sync.Mutex

// EachUser 对用户数据库的每条记录调用 fn，按文件顺序。
//
// 整个遍历持有包级互斥锁；fn 返回非 nil 错误时遍历中止并原样
// 返回该错误。fn 内不得再调用本包的枚举函数，否则死锁。
func EachUser(fn func(User) error) error {
	if fn == nil {
		return ErrNilFunc
	}
	walkMu.Lock()
	defer walkMu.Unlock()

	return walk(openPasswd, func(lineNo int, line string) error {
		u, err := parseUser(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		return fn(u)
	})
}

// EachGroup 对组数据库的每条记录调用 fn。纪律与 [EachUser] 一致。
func EachGroup(fn func(Group) error) error {
	if fn == nil {
		return ErrNilFunc
	}
	walkMu.Lock()
	defer walkMu.Unlock()

	return walk(openGroup, func(lineNo int, line string) error {
		g, err := parseGroup(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		return fn(g)
	})
}

// Users 收集用户数据库的全部记录。
func Users() ([]User, error) {
	var out []User
	err := EachUser(func(u User) error {
		out = append(out, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Groups 收集组数据库的全部记录。
func Groups() ([]Group, error) {
	var out []Group
	err := EachGroup(func(g Group) error {
		out = append(out, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// walk 打开数据库、逐行送入 lineFn、关闭。游标在所有路径上关闭；
// 遍历已失败时关闭错误不再上抛。行号从 1 起计，lineFn 的错误
// 原样返回。
func walk(open func() (io.ReadCloser, error), lineFn func(int, string) error) (err error) {
	cursor, openErr := open()
	if openErr != nil {
		return openErr
	}
	defer func() {
		closeErr := cursor.Close()
		if err == nil {
			err = closeErr
		}
	}()

	scanner := bufio.NewScanner(cursor)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := lineFn(lineNo, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
