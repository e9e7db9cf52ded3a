// Package xpasswd 提供用户/组数据库（/etc/passwd、/etc/group）的
// 安全枚举。
//
// # 临界区纪律
//
// 底层数据库遍历在概念上共享一个全局游标，重入或交错遍历会互相
// 破坏位置。本包把整个遍历（打开、逐行读取、回调、关闭）做成
// 包级互斥锁下的单一临界区：[EachUser] 与 [EachGroup] 互斥，进程
// 内任意时刻至多一个遍历在进行。
//
// # 游标关闭
//
// 游标在所有路径上关闭：正常走完、行解析失败、回调中止。遍历
// 已失败时关闭失败不再上抛；遍历成功而关闭失败时返回关闭错误。
//
// # 行格式
//
// 注释行（# 开头）与空行跳过；字段数不符或数值字段非法的行以
// [ErrMalformedEntry] 报告并携带行号，遍历随即终止——静默跳过
// 坏行会掩盖数据库损坏。
package xpasswd
