// Package xflag 提供命名标志位的泛型位集代数。
//
// xflag 面向与内核二进制布局逐位一致的标志字段：一组 1:1 映射到
// 单个比特位的命名标志，外加至多一个占据保留比特子区间的多比特
// "模式"子字段（例如 open(2) 的 O_ACCMODE 用低两位编码三态访问模式）。
//
// # 核心类型
//
//   - [Flag]: 命名标志（名称 + 位值）
//   - [Mode]: 多比特模式子字段（名称 + 掩码 + 成员集合），作为整体读写
//   - [Table]: 不可变的标志描述表，构造时一次性探测并过滤宿主不支持的标志
//   - [Set]: 整数背书的标志集合值类型，与整数精确互转
//
// # 模式子字段
//
// 模式字段作为一个单元测试和设置，绝不按位并集处理：渲染时先将
// 模式子字段提取为一个命名记号并从剩余位中减去，再把余下的位按
// 普通单比特标志渲染，避免把多比特字段误表示为一组无关单比特
// 标志的组合。模式字段恰好允许一个位模式为零的指定默认成员
// （如只读访问模式），该成员仍按名称渲染，而非"无标志"。
//
// # 探测与过滤策略
//
// 宿主报告不支持（位值无法识别）的标志在 [NewTable] 构造时被过滤出
// 已知集合，而非在使用时过滤，使进程生命周期内的重复查询廉价且
// 一致。被过滤的名称可通过 [Table.Unsupported] 查询，调用方可据此
// 把静默降级转成显式能力检查。
//
// # 渲染格式
//
// 括号包裹、空格分隔的标志名列表，存在模式字段时其名称在最前：
//
//	(wronly append)
//	(rdonly)
//
// 表不认识的残余位以一个十六进制记号收尾，保证渲染无损。
//
// # open(2) 标志实例
//
// [OpenFlags] 基于 [golang.org/x/sys/unix] 的 O_* 常量提供现成的
// 打开标志表（Unix 平台），配合 [CanRead] / [CanWrite] 判断访问模式。
package xflag
