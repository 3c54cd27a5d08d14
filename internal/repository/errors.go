package repository

import "errors"

// ErrDuplicateOpenShift 打开状态唯一索引冲突：该员工已存在未关闭的打卡记录
// 并发上班打卡竞争时由数据库部分唯一索引仲裁，落败一方收到此错误
var ErrDuplicateOpenShift = errors.New("员工已存在未关闭的打卡记录")
