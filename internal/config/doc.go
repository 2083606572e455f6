// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

/*
Package config provides configuration management for Lottopick.

Configuration is loaded with Koanf v2 from three layers, highest priority last:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: --config flag, CONFIG_PATH, or the first of
    lottopick.yaml, config.yaml, /etc/lottopick/config.yaml that exists
 3. Environment variables (see envTransformFunc for the mapping)

# Example File

	data:
	  file: /var/lib/lottopick/lotto_winners.csv
	source:
	  url: https://dhlottery.co.kr/gameResult.do?method=byWin
	  timeout: 5s
	  request_delay: 1s
	recommend:
	  count: 5
	  tier_size: 20
	  max_attempts: 10000
	sync:
	  enabled: true
	  interval: 24h
	server:
	  port: 8645
	logging:
	  level: info
	  format: console

# Environment Variables

	LOTTO_DATA_FILE            data.file
	LOTTO_SOURCE_URL           source.url
	LOTTO_SOURCE_TIMEOUT       source.timeout
	LOTTO_REQUEST_DELAY        source.request_delay
	LOTTO_RECOMMEND_COUNT      recommend.count
	LOTTO_TIER_SIZE            recommend.tier_size
	LOTTO_MAX_ATTEMPTS         recommend.max_attempts
	LOTTO_SEED                 recommend.seed
	LOTTO_SYNC_ENABLED         sync.enabled
	LOTTO_SYNC_INTERVAL        sync.interval
	HTTP_HOST / HTTP_PORT      server.host / server.port
	LOG_LEVEL / LOG_FORMAT     logging.level / logging.format
*/
package config
