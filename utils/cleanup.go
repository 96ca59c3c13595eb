package utils

import (
	"log"
	"time"

	"github.com/karisnidevibalan/lms-backend/services"
)

// StartCacheSweepJob quét định kỳ các entry cache đã hết hạn.
// Cache tự xoá entry hết hạn khi đọc, job này chỉ dọn các key không
// còn được đọc tới để giải phóng bộ nhớ.
func StartCacheSweepJob(caches ...*services.Cache) {
	ticker := time.NewTicker(10 * time.Minute)

	go func() {
		defer ticker.Stop()
		for range ticker.C {
			removed := 0
			for _, c := range caches {
				removed += c.Purge()
			}
			if removed > 0 {
				log.Printf("Cache sweep: đã xóa %d entry hết hạn", removed)
			}
		}
	}()

	log.Println("Cache sweep job đã được khởi động (chạy mỗi 10 phút)")
}
